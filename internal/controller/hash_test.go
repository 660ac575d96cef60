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

package controller

import (
	"testing"

	. "github.com/onsi/gomega"
)

// TestConfigHashStableUnderKeyReordering covers Testable Property 4: the
// JSON object key order within a value must not affect the hash.
func TestConfigHashStableUnderKeyReordering(t *testing.T) {
	g := NewWithT(t)

	a, err := computeConfigHash(map[string]string{"config.json": `{"a":1,"b":2}`})
	g.Expect(err).NotTo(HaveOccurred())

	b, err := computeConfigHash(map[string]string{"config.json": `{"b":2,"a":1}`})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(a).To(Equal(b))
}

func TestConfigHashChangesWithValue(t *testing.T) {
	g := NewWithT(t)

	a, err := computeConfigHash(map[string]string{"config.json": `{"a":1}`})
	g.Expect(err).NotTo(HaveOccurred())

	b, err := computeConfigHash(map[string]string{"config.json": `{"a":2}`})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(a).NotTo(Equal(b))
}

func TestConfigHashStableAcrossDataMapKeyReordering(t *testing.T) {
	g := NewWithT(t)

	a, err := computeConfigHash(map[string]string{"config.json": "{}", "strategy.py": "pass"})
	g.Expect(err).NotTo(HaveOccurred())

	b, err := computeConfigHash(map[string]string{"strategy.py": "pass", "config.json": "{}"})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(a).To(Equal(b))
}

func TestConfigHashPreservesArrayOrder(t *testing.T) {
	g := NewWithT(t)

	a, err := computeConfigHash(map[string]string{"config.json": `{"list":[1,2,3]}`})
	g.Expect(err).NotTo(HaveOccurred())

	b, err := computeConfigHash(map[string]string{"config.json": `{"list":[3,2,1]}`})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(a).NotTo(Equal(b))
}

func TestConfigHashProducesLowercaseHex(t *testing.T) {
	g := NewWithT(t)

	hash, err := computeConfigHash(map[string]string{"config.json": "{}"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(hash).To(HaveLen(64))
	g.Expect(hash).To(MatchRegexp("^[0-9a-f]+$"))
}
