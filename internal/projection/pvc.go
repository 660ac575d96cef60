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
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/freqtrade-operator/operator/internal/hub"
)

// PVC projects the bot's persistent storage request into a
// PersistentVolumeClaim. Callers are responsible for checking
// b.Spec.PVC.Enabled before applying the result; a disabled PVC still
// projects cleanly so the reconciler can compute one to delete against.
func PVC(b *hub.Bot, name, namespace string, owner metav1.OwnerReference) *corev1.PersistentVolumeClaim {
	pvc := b.Spec.PVC

	size, err := resource.ParseQuantity(pvc.Size)
	if err != nil {
		size = resource.MustParse("1Gi")
	}

	spec := corev1.PersistentVolumeClaimSpec{
		AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
		Resources: corev1.VolumeResourceRequirements{
			Requests: corev1.ResourceList{
				corev1.ResourceStorage: size,
			},
		},
	}
	if pvc.StorageClass != "" {
		spec.StorageClassName = &pvc.StorageClass
	}

	return &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
			Annotations:     pvc.Annotations,
			Labels:          pvc.Labels,
		},
		Spec: spec,
	}
}
