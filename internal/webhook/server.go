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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/go-logr/logr"
)

// ValidatePath is the fixed route the validating webhook configuration
// points at.
const ValidatePath = "/admission/freqtrade.io/bot/validate"

// serverName identifies this server in its health/version response.
const serverName = "freqtrade-operator"

// shutdownDrain is how long the server waits for in-flight requests to
// finish once a shutdown signal is received.
const shutdownDrain = 10 * time.Second

type admitFn func(*admissionv1.AdmissionReview) (*admissionv1.AdmissionResponse, error)

// admissionScheme carries only the admission.k8s.io/v1 types. AdmissionReview
// is never served by the API server's own clientset, so the generic
// client-go scheme has no use for it; decoding it needs its own scheme.
var admissionScheme = runtime.NewScheme()

func init() {
	utilruntime.Must(admissionv1.AddToScheme(admissionScheme))
}

var admissionCodecs = serializer.NewCodecFactory(admissionScheme)

// Server serves the Bot admission webhook over HTTP(S), separately from
// controller-runtime's manager and webhook scaffolding so it can own an
// exact path and an untraced health endpoint.
type Server struct {
	logger  logr.Logger
	decoder runtime.Decoder
}

// NewServer returns a Server that logs through logger.
func NewServer(logger logr.Logger) *Server {
	return &Server{
		logger:  logger,
		decoder: admissionCodecs.UniversalDeserializer(),
	}
}

// Handler builds the server's http.Handler: the validation endpoint plus an
// untraced health/version endpoint at the root.
func (s *Server) Handler(version string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(ValidatePath, s.serveAdmission(admitBot))
	mux.HandleFunc("/", s.serveHealth(version))
	return mux
}

func (s *Server) serveHealth(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"name":%q,"version":%q}`, serverName, version)
	}
}

func (s *Server) serveAdmission(admit admitFn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.V(1).Info("webhook called", "method", r.Method, "host", r.Host, "path", r.URL.Path)

		var req, resp admissionv1.AdmissionReview

		if data, err := io.ReadAll(r.Body); err != nil {
			s.logger.Error(err, "reading request body")
			resp.Response = toAdmissionResponse(err)
		} else if _, _, err := s.decoder.Decode(data, nil, &req); err != nil {
			s.logger.Error(err, "decoding request body")
			resp.Response = toAdmissionResponse(err)
		} else if ar, err := admit(&req); err != nil {
			s.logger.Error(err, "admitting admission request")
			resp.Response = toAdmissionResponse(err)
		} else {
			resp.Response = ar
		}

		if req.Request != nil {
			resp.APIVersion = req.APIVersion
			resp.Kind = req.Kind
			resp.Response.UID = req.Request.UID
		}

		if respBytes, err := json.Marshal(resp); err != nil {
			s.logger.Error(err, "encoding response body")
		} else if _, err := w.Write(respBytes); err != nil {
			s.logger.Error(err, "writing response body")
		}
	}
}

// admitBot validates a Bot admission request's raw object against the
// reserved key/env var rules.
func admitBot(ar *admissionv1.AdmissionReview) (*admissionv1.AdmissionResponse, error) {
	if ar.Request == nil {
		return nil, fmt.Errorf("admission review carried no request")
	}

	allowed, reason := ValidateBotObject(ar.Request.Object.Raw)
	if !allowed {
		return &admissionv1.AdmissionResponse{
			Allowed: false,
			Result: &metav1.Status{
				Status:  metav1.StatusFailure,
				Message: reason,
			},
		}, nil
	}
	return &admissionv1.AdmissionResponse{Allowed: true}, nil
}

func toAdmissionResponse(err error) *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{
		Allowed: false,
		Result: &metav1.Status{
			Status:  metav1.StatusFailure,
			Message: err.Error(),
		},
	}
}

// ListenAndServeTLS serves h on addr with the given certificate, shutting
// down gracefully (draining in-flight requests for up to shutdownDrain) when
// ctx is canceled.
func ListenAndServeTLS(ctx context.Context, addr, certFile, keyFile string, h http.Handler, logger logr.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down webhook server", "drain", shutdownDrain.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownDrain)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
