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

package hub

import (
	"testing"

	"k8s.io/apimachinery/pkg/runtime"

	. "github.com/onsi/gomega"

	v1alpha1 "github.com/freqtrade-operator/operator/api/v1alpha1"
)

func TestFromV1Alpha1AppliesDefaults(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: v1alpha1.BotStrategySpec{Name: "S", Source: "pass"},
		},
	}
	wire.Name = "b"
	wire.Namespace = "ns"

	b := FromV1Alpha1(wire)

	g.Expect(b.Spec.Database).To(Equal("sqlite:///database.db"))
	// Image repository and tag stay empty here; projection fills them from
	// the operator's configured defaults.
	g.Expect(b.Spec.Image.Repository).To(BeEmpty())
	g.Expect(b.Spec.Image.Tag).To(BeEmpty())
	g.Expect(b.Spec.API.Host).To(Equal("0.0.0.0"))
	g.Expect(b.Spec.API.Port).To(Equal(int32(8080)))
	g.Expect(b.Spec.PVC.Size).To(Equal("1Gi"))
	g.Expect(b.Status).To(BeNil())
}

func TestFromV1Alpha1PreservesExplicitValues(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "kraken",
			Database: "postgres://custom",
			Strategy: v1alpha1.BotStrategySpec{Name: "S"},
			Image:    v1alpha1.BotImageSpec{Repository: "myorg/freqtrade", Tag: "v1"},
		},
	}

	b := FromV1Alpha1(wire)

	g.Expect(b.Spec.Database).To(Equal("postgres://custom"))
	g.Expect(b.Spec.Image.Repository).To(Equal("myorg/freqtrade"))
	g.Expect(b.Spec.Image.Tag).To(Equal("v1"))
}

func TestFromV1Alpha1UnsetConfigDecodesToNil(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: v1alpha1.BotStrategySpec{Name: "S"},
		},
	}

	b := FromV1Alpha1(wire)
	g.Expect(b.Spec.Config).To(BeNil())
}

func TestFromV1Alpha1DecodesExplicitConfig(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: v1alpha1.BotStrategySpec{Name: "S"},
			Config:   &runtime.RawExtension{Raw: []byte(`{"key":"v1"}`)},
		},
	}

	b := FromV1Alpha1(wire)
	g.Expect(b.Spec.Config).To(HaveKeyWithValue("key", "v1"))
}

func TestFromV1Alpha1ModelEnablesModelMode(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: v1alpha1.BotStrategySpec{Name: "S"},
			Model:    &v1alpha1.BotModelSpec{Source: "model-src"},
		},
	}

	b := FromV1Alpha1(wire)
	g.Expect(b.Spec.Model).NotTo(BeNil())
	g.Expect(b.Spec.Model.Name).To(Equal("LightGBMRegressor"))
}

func TestSecretItemConversionPreservesTaggedUnion(t *testing.T) {
	g := NewWithT(t)

	wire := &v1alpha1.Bot{
		Spec: v1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: v1alpha1.BotStrategySpec{Name: "S"},
			Secrets: v1alpha1.BotSecrets{
				Exchange: &v1alpha1.ExchangeSecrets{
					Key:    &v1alpha1.SecretItem{Value: "inline-key"},
					Secret: &v1alpha1.SecretItem{SecretKeyRef: &v1alpha1.SecretKeySelector{Name: "s", Key: "secret"}},
				},
			},
		},
	}

	b := FromV1Alpha1(wire)
	g.Expect(b.Spec.Secrets.Exchange.Key.Value).To(Equal("inline-key"))
	g.Expect(b.Spec.Secrets.Exchange.Secret.SecretKeyRef.Name).To(Equal("s"))
	g.Expect(b.Spec.Secrets.Exchange.Secret.SecretKeyRef.Key).To(Equal("secret"))
}

func TestEnsureAPIPortDoesNotDuplicateUserDeclaredPort(t *testing.T) {
	g := NewWithT(t)

	svc := &BotServiceSpec{Ports: []BotServicePort{{Name: "api", Port: 9000, TargetPort: "custom"}}}
	svc.EnsureAPIPort(8080)

	g.Expect(svc.Ports).To(HaveLen(1))
	g.Expect(svc.Ports[0].Port).To(Equal(int32(9000)))
}

func TestEnsureAPIPortAppendsWhenAbsent(t *testing.T) {
	g := NewWithT(t)

	svc := &BotServiceSpec{}
	svc.EnsureAPIPort(8080)

	g.Expect(svc.Ports).To(HaveLen(1))
	g.Expect(svc.Ports[0].Name).To(Equal("api"))
	g.Expect(svc.Ports[0].Port).To(Equal(int32(8080)))
}
