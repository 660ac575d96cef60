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

package projection

import (
	"reflect"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	. "github.com/onsi/gomega"

	"github.com/freqtrade-operator/operator/internal/config"
	"github.com/freqtrade-operator/operator/internal/hub"
)

func testOwner() metav1.OwnerReference {
	return metav1.OwnerReference{APIVersion: "freqtrade.io/v1alpha1", Kind: "Bot", Name: "b", UID: "uid-1"}
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Controller: config.ControllerConfig{DefaultImageRepo: "freqtradeorg/freqtrade", DefaultImageTag: "stable"},
	}
}

func minimalBot() *hub.Bot {
	return &hub.Bot{
		Name:      "b",
		Namespace: "ns",
		Spec: hub.BotSpec{
			Exchange: "binance",
			Database: "sqlite:///database.db",
			Strategy: hub.BotStrategySpec{Name: "S", Source: "pass"},
			Image:    hub.BotImageSpec{Repository: "freqtradeorg/freqtrade", Tag: "stable"},
			API:      hub.BotAPISpec{Enabled: true, Host: "0.0.0.0", Port: 8080},
			PVC:      hub.BotPVCSpec{Enabled: true, Size: "1Gi"},
		},
	}
}

// TestProjectionDeterminism covers Testable Property 1: project(b) equals
// project(b) for repeated calls against the same input.
func TestProjectionDeterminism(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	owner := testOwner()
	cfg := testConfig()

	first := Project(b, b.Name, b.Namespace, owner, cfg)
	second := Project(b, b.Name, b.Namespace, owner, cfg)

	g.Expect(reflect.DeepEqual(first.ConfigMap, second.ConfigMap)).To(BeTrue())
	g.Expect(reflect.DeepEqual(first.PVC, second.PVC)).To(BeTrue())
	g.Expect(reflect.DeepEqual(first.Deployment, second.Deployment)).To(BeTrue())
	g.Expect(reflect.DeepEqual(first.Service, second.Service)).To(BeTrue())
}

// TestCreateFlowScenario covers spec scenario S1: a minimal bot with an
// inline strategy and no existing dependents projects a ConfigMap with
// config.json=null and strategy.py=<source>, a 1Gi PVC, a single-container
// Deployment on the default image, and a Service with exactly one `api`
// port at 8080.
func TestCreateFlowScenario(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	objs := Project(b, b.Name, b.Namespace, testOwner(), testConfig())

	g.Expect(objs.ConfigMap.Data["config.json"]).To(Equal("null"))
	g.Expect(objs.ConfigMap.Data["strategy.py"]).To(Equal("pass"))
	g.Expect(objs.ConfigMap.Data).NotTo(HaveKey("model.py"))

	g.Expect(objs.PVC.Spec.Resources.Requests.Storage().String()).To(Equal("1Gi"))

	g.Expect(objs.Deployment.Spec.Template.Spec.Containers).To(HaveLen(1))
	g.Expect(objs.Deployment.Spec.Template.Spec.Containers[0].Image).To(Equal("freqtradeorg/freqtrade:stable"))
	g.Expect(*objs.Deployment.Spec.Replicas).To(Equal(int32(1)))

	g.Expect(objs.Service.Spec.Ports).To(HaveLen(1))
	g.Expect(objs.Service.Spec.Ports[0].Name).To(Equal("api"))
	g.Expect(objs.Service.Spec.Ports[0].Port).To(Equal(int32(8080)))
}

// TestExclusivePortInvariant covers Testable Property 6: when API is
// enabled, exactly one `api`-named port is ever present, whether or not the
// user already declared one.
func TestExclusivePortInvariant(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	b.Spec.Service.Ports = []hub.BotServicePort{{Name: "api", Port: 9000, TargetPort: "custom"}}

	objs := Project(b, b.Name, b.Namespace, testOwner(), testConfig())

	g.Expect(objs.Service.Spec.Ports).To(HaveLen(1))
	g.Expect(objs.Service.Spec.Ports[0].Port).To(Equal(int32(9000)))
}

// TestLabelInvariant covers Testable Property 5: every managed object
// carries the three identifying labels equal to the bot's name.
func TestLabelInvariant(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	objs := Project(b, b.Name, b.Namespace, testOwner(), testConfig())

	for k, v := range identifyingLabels(b.Name) {
		g.Expect(objs.Deployment.Labels).To(HaveKeyWithValue(k, v))
		g.Expect(objs.Deployment.Spec.Selector.MatchLabels).To(HaveKeyWithValue(k, v))
		g.Expect(objs.Service.Spec.Selector).To(HaveKeyWithValue(k, v))
	}
}

// TestSingleReplicaInvariant covers Testable Property 7.
func TestSingleReplicaInvariant(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	objs := Project(b, b.Name, b.Namespace, testOwner(), testConfig())
	g.Expect(objs.Deployment.Spec.Replicas).NotTo(BeNil())
	g.Expect(*objs.Deployment.Spec.Replicas).To(Equal(int32(1)))
}

func TestDeploymentCommandExpandsCMDToken(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	b.Spec.Deployment.Command = []string{"sh", "-c", "$CMD", "--dry-run"}

	dep := Deployment(b, b.Name, b.Namespace, testOwner(), testConfig())
	g.Expect(dep.Spec.Template.Spec.Containers[0].Command).To(Equal(
		[]string{"sh", "-c", "freqtrade", "trade", "--config", "/etc/freqtrade/config.json", "--dry-run"},
	))
}

func TestDeploymentModelAddsFreqAIModelFlagAndEnv(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	b.Spec.Model = &hub.BotModelSpec{Name: "LightGBMRegressor", Source: "model-src"}

	dep := Deployment(b, b.Name, b.Namespace, testOwner(), testConfig())
	g.Expect(dep.Spec.Template.Spec.Containers[0].Command).To(ContainElement("--freqaimodel"))

	var sawFreqAI bool
	for _, e := range dep.Spec.Template.Spec.Containers[0].Env {
		if e.Name == "FREQTRADE__FREQAI__ENABLED" {
			sawFreqAI = true
			g.Expect(e.Value).To(Equal("true"))
		}
	}
	g.Expect(sawFreqAI).To(BeTrue())

	cm := ConfigMap(b, b.Name, b.Namespace, metav1.OwnerReference{})
	g.Expect(cm.Data["model.py"]).To(Equal("model-src"))
}

func TestPVCToggleOffProjectsCleanlyForDeletion(t *testing.T) {
	g := NewWithT(t)

	b := minimalBot()
	b.Spec.PVC.Enabled = false

	// PVC still projects even when disabled: the reconciler needs an
	// object identity to delete against, not a nil.
	pvc := PVC(b, b.Name, b.Namespace, testOwner())
	g.Expect(pvc).NotTo(BeNil())
	g.Expect(pvc.Name).To(Equal(b.Name))
}
