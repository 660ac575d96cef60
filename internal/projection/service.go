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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/freqtrade-operator/operator/internal/hub"
)

// Service projects the optional Service fronting the bot's API. When the
// API is enabled, an `api`-named port targeting the API's container port is
// guaranteed to be present even if the user didn't declare one.
func Service(b *hub.Bot, name, namespace string, owner metav1.OwnerReference) *corev1.Service {
	svc := b.Spec.Service
	if b.Spec.API.Enabled {
		svc.EnsureAPIPort(b.Spec.API.Port)
	}

	ports := make([]corev1.ServicePort, 0, len(svc.Ports))
	for _, p := range svc.Ports {
		ports = append(ports, corev1.ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: intstr.FromString(p.TargetPort),
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
			Annotations:     svc.Annotations,
			Labels:          svc.Labels,
		},
		Spec: corev1.ServiceSpec{
			Type:     svc.Type,
			Selector: identifyingLabels(name),
			Ports:    ports,
		},
	}
}
