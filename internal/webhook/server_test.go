/*
Copyright 2024 The freqtrade-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"

	"github.com/go-logr/logr"
	. "github.com/onsi/gomega"
)

func admissionReview(uid types.UID, spec map[string]interface{}) *admissionv1.AdmissionReview {
	obj := map[string]interface{}{
		"kind":       "Bot",
		"apiVersion": "freqtrade.io/v1alpha1",
		"spec":       spec,
	}
	raw, _ := json.Marshal(obj)

	return &admissionv1.AdmissionReview{
		TypeMeta: metav1.TypeMeta{APIVersion: "admission.k8s.io/v1", Kind: "AdmissionReview"},
		Request: &admissionv1.AdmissionRequest{
			UID:    uid,
			Object: runtime.RawExtension{Raw: raw},
		},
	}
}

func TestServeAdmissionAllowsCleanSpec(t *testing.T) {
	g := NewWithT(t)

	s := NewServer(logr.Discard())
	handler := s.Handler("test")

	review := admissionReview("uid-1", map[string]interface{}{"exchange": "binance", "strategy": map[string]interface{}{"name": "S"}})
	body, err := json.Marshal(review)
	g.Expect(err).NotTo(HaveOccurred())

	req := httptest.NewRequest(http.MethodPost, ValidatePath, strings.NewReader(string(body)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp admissionv1.AdmissionReview
	g.Expect(json.Unmarshal(rr.Body.Bytes(), &resp)).To(Succeed())
	g.Expect(resp.Response.Allowed).To(BeTrue())
	g.Expect(resp.Response.UID).To(Equal(types.UID("uid-1")))
}

func TestServeAdmissionDeniesReservedKey(t *testing.T) {
	g := NewWithT(t)

	s := NewServer(logr.Discard())
	handler := s.Handler("test")

	review := admissionReview("uid-2", map[string]interface{}{"config": map[string]interface{}{"bot_name": "x"}})
	body, err := json.Marshal(review)
	g.Expect(err).NotTo(HaveOccurred())

	req := httptest.NewRequest(http.MethodPost, ValidatePath, strings.NewReader(string(body)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp admissionv1.AdmissionReview
	g.Expect(json.Unmarshal(rr.Body.Bytes(), &resp)).To(Succeed())
	g.Expect(resp.Response.Allowed).To(BeFalse())
	g.Expect(resp.Response.UID).To(Equal(types.UID("uid-2")))
}

func TestServeHealthReturnsVersion(t *testing.T) {
	g := NewWithT(t)

	s := NewServer(logr.Discard())
	handler := s.Handler("v1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	g.Expect(json.Unmarshal(rr.Body.Bytes(), &resp)).To(Succeed())
	g.Expect(resp.Name).NotTo(BeEmpty())
	g.Expect(resp.Version).To(Equal("v1.2.3"))
}
