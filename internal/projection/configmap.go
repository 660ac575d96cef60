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
	"encoding/json"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/freqtrade-operator/operator/internal/hub"
)

// ConfigMap projects the bot's configuration file, strategy source (when
// inlined rather than sourced from a user ConfigMap), and model source
// (whenever a model with a non-empty inline source is declared) into a
// single ConfigMap.
func ConfigMap(b *hub.Bot, name, namespace string, owner metav1.OwnerReference) *corev1.ConfigMap {
	configJSON, _ := json.Marshal(b.Spec.Config)

	data := map[string]string{
		"config.json": string(configJSON),
	}
	if b.Spec.Strategy.ConfigMapName == "" {
		data["strategy.py"] = b.Spec.Strategy.Source
	}
	if b.Spec.Model != nil && b.Spec.Model.Source != "" {
		data["model.py"] = b.Spec.Model.Source
	}

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Data: data,
	}
}
