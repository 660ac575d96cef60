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

package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func TestLoadDefaults(t *testing.T) {
	g := NewWithT(t)

	cfg, err := Load("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Controller.DefaultImageRepo).To(Equal("freqtradeorg/freqtrade"))
	g.Expect(cfg.Controller.DefaultImageTag).To(Equal("stable"))
	g.Expect(cfg.Webhook.Host).To(Equal("0.0.0.0"))
	g.Expect(cfg.Webhook.Port).To(Equal(8443))
	g.Expect(cfg.Webhook.TLS.CertFile).To(Equal("/etc/ssl/certs/tls.crt"))
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	g.Expect(os.WriteFile(path, []byte(`{"controller":{"default_image_tag":"2024.1"}}`), 0o600)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Controller.DefaultImageTag).To(Equal("2024.1"))
	g.Expect(cfg.Controller.DefaultImageRepo).To(Equal("freqtradeorg/freqtrade"))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	g.Expect(os.WriteFile(path, []byte(`{"webhook":{"port":9000}}`), 0o600)).To(Succeed())

	t.Setenv("BOTS_WEBHOOK__PORT", "9443")

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Webhook.Port).To(Equal(9443))
}
