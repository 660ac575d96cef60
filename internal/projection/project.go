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
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/freqtrade-operator/operator/internal/config"
	"github.com/freqtrade-operator/operator/internal/hub"
)

// Objects bundles the full set of dependent objects projected for a bot.
type Objects struct {
	ConfigMap  *corev1.ConfigMap
	PVC        *corev1.PersistentVolumeClaim
	Deployment *appsv1.Deployment
	Service    *corev1.Service
}

// Project computes the desired state of every dependent object for a bot in
// one call, so the reconciler can diff each against the cluster's observed
// state.
func Project(b *hub.Bot, name, namespace string, owner metav1.OwnerReference, cfg *config.AppConfig) Objects {
	return Objects{
		ConfigMap:  ConfigMap(b, name, namespace, owner),
		PVC:        PVC(b, name, namespace, owner),
		Deployment: Deployment(b, name, namespace, owner, cfg),
		Service:    Service(b, name, namespace, owner),
	}
}
