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

// Package projection turns a hub.Bot into the Kubernetes objects the
// operator manages on its behalf: a ConfigMap, an optional
// PersistentVolumeClaim, a Deployment, and an optional Service.
package projection

// identifyingLabels are the labels used both as the Deployment's pod
// selector and as the Service's endpoint selector; they must never change
// across reconciles for a given bot name.
func identifyingLabels(name string) map[string]string {
	return map[string]string{
		"freqtrade.io/bot-name":      name,
		"app.kubernetes.io/name":     name,
		"app.kubernetes.io/instance": name,
	}
}

// metadataLabels are descriptive labels merged on top of identifyingLabels
// for Deployment metadata; they carry no selection semantics.
func metadataLabels() map[string]string {
	return map[string]string{
		"app.kubernetes.io/component":  "bot",
		"app.kubernetes.io/part-of":    "freqtrade",
		"app.kubernetes.io/managed-by": "freqtrade-operator",
	}
}

// mergeLabels layers identifying and metadata labels on top of any
// user-supplied labels, with the operator's own labels taking precedence.
func mergeLabels(user map[string]string, name string) map[string]string {
	out := make(map[string]string, len(user)+6)
	for k, v := range user {
		out[k] = v
	}
	for k, v := range identifyingLabels(name) {
		out[k] = v
	}
	for k, v := range metadataLabels() {
		out[k] = v
	}
	return out
}
