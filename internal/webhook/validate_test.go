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
	"testing"

	. "github.com/onsi/gomega"
)

func TestValidateBotObjectAllowsCleanSpec(t *testing.T) {
	g := NewWithT(t)

	raw := []byte(`{
		"kind": "Bot",
		"apiVersion": "freqtrade.io/v1alpha1",
		"spec": {"exchange": "binance", "strategy": {"name": "MyStrategy"}}
	}`)

	allowed, reason := ValidateBotObject(raw)
	g.Expect(allowed).To(BeTrue())
	g.Expect(reason).To(BeEmpty())
}

func TestValidateBotObjectRejectsReservedConfigKey(t *testing.T) {
	g := NewWithT(t)

	raw := []byte(`{
		"kind": "Bot",
		"apiVersion": "freqtrade.io/v1alpha1",
		"spec": {"config": {"api_server": {"enabled": true}}}
	}`)

	allowed, reason := ValidateBotObject(raw)
	g.Expect(allowed).To(BeFalse())
	g.Expect(reason).To(ContainSubstring("config.api_server.enabled"))
}

func TestValidateBotObjectRejectsReservedEnvVar(t *testing.T) {
	g := NewWithT(t)

	raw := []byte(`{
		"kind": "Bot",
		"apiVersion": "freqtrade.io/v1alpha1",
		"spec": {"FREQTRADE__BOT_NAME": "override"}
	}`)

	allowed, reason := ValidateBotObject(raw)
	g.Expect(allowed).To(BeFalse())
	g.Expect(reason).To(ContainSubstring("FREQTRADE__BOT_NAME"))
}

func TestValidateBotObjectRejectsWrongKind(t *testing.T) {
	g := NewWithT(t)

	raw := []byte(`{"kind": "Widget", "apiVersion": "freqtrade.io/v1alpha1", "spec": {}}`)

	allowed, reason := ValidateBotObject(raw)
	g.Expect(allowed).To(BeFalse())
	g.Expect(reason).To(ContainSubstring("Widget"))
}

func TestValidateBotObjectRejectsWrongVersion(t *testing.T) {
	g := NewWithT(t)

	raw := []byte(`{"kind": "Bot", "apiVersion": "freqtrade.io/v1alpha2", "spec": {}}`)

	allowed, reason := ValidateBotObject(raw)
	g.Expect(allowed).To(BeFalse())
	g.Expect(reason).To(ContainSubstring("v1alpha2"))
}

func TestCheckKeyExistsWalksNestedPath(t *testing.T) {
	g := NewWithT(t)

	payload := map[string]interface{}{
		"config": map[string]interface{}{
			"exchange": map[string]interface{}{
				"name": "binance",
			},
		},
	}

	g.Expect(checkKeyExists(payload, "config.exchange.name")).To(BeTrue())
	g.Expect(checkKeyExists(payload, "config.exchange.missing")).To(BeFalse())
	g.Expect(checkKeyExists(payload, "config.telegram.token")).To(BeFalse())
}
