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

var one int32 = 1

// Deployment projects the bot's single-replica Deployment, merging
// operator-managed fields (image, command, env, the config volume) with
// the user-supplied BotDeploymentSpec overlay.
func Deployment(b *hub.Bot, name, namespace string, owner metav1.OwnerReference, cfg *config.AppConfig) *appsv1.Deployment {
	spec := b.Spec
	dep := spec.Deployment

	repo := spec.Image.Repository
	if repo == "" {
		repo = cfg.Controller.DefaultImageRepo
	}
	tag := spec.Image.Tag
	if tag == "" {
		tag = cfg.Controller.DefaultImageTag
	}

	identifying := identifyingLabels(name)
	podLabels := mergeLabels(dep.Labels, name)

	container := corev1.Container{
		Name:            name,
		Image:           repo + ":" + tag,
		ImagePullPolicy: spec.Image.PullPolicy,
		Command:         resolveCommand(dep.Command, b),
		Env:             botEnvVars(b),
		SecurityContext: dep.SecurityContext,
		Ports: []corev1.ContainerPort{
			{ContainerPort: spec.API.Port, Name: "api"},
		},
		VolumeMounts: append([]corev1.VolumeMount{
			{Name: "config", MountPath: "/etc/freqtrade"},
		}, dep.VolumeMounts...),
	}

	containers := append([]corev1.Container{container}, dep.Containers...)

	var initContainers []corev1.Container
	if len(dep.InitContainers) > 0 {
		initContainers = dep.InitContainers
	}

	var pullSecrets []corev1.LocalObjectReference
	for _, s := range spec.Image.PullSecrets {
		pullSecrets = append(pullSecrets, corev1.LocalObjectReference{Name: s})
	}

	volumes := []corev1.Volume{configVolume(b, name)}
	if spec.PVC.Enabled {
		volumes = append(volumes, corev1.Volume{
			Name: "user-data",
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{ClaimName: name},
			},
		})
	}
	if spec.Strategy.ConfigMapName != "" {
		volumes = append(volumes, corev1.Volume{
			Name: "strategy",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Strategy.ConfigMapName},
				},
			},
		})
	}
	if spec.Model != nil && spec.Model.ConfigMapName != "" {
		volumes = append(volumes, corev1.Volume{
			Name: "model",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Model.ConfigMapName},
				},
			},
		})
	}
	volumes = append(volumes, dep.Volumes...)

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{owner},
			Annotations:     dep.Annotations,
			Labels:          mergeLabels(dep.Labels, name),
		},
		Spec: appsv1.DeploymentSpec{
			// A bot is always a single replica: Freqtrade cannot be
			// horizontally scaled.
			Replicas: &one,
			Selector: &metav1.LabelSelector{MatchLabels: identifying},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Annotations: dep.Annotations,
					Labels:      podLabels,
				},
				Spec: corev1.PodSpec{
					ImagePullSecrets: pullSecrets,
					Containers:       containers,
					InitContainers:   initContainers,
					Volumes:          volumes,
					NodeSelector:     dep.NodeSelector,
					Affinity:         dep.Affinity,
					Tolerations:      dep.Tolerations,
					SecurityContext:  dep.PodSecurityContext,
				},
			},
		},
	}
}

func configVolume(b *hub.Bot, name string) corev1.Volume {
	items := []corev1.KeyToPath{
		{Key: "config.json", Path: "config.json"},
	}
	if b.Spec.Strategy.ConfigMapName == "" {
		items = append(items, corev1.KeyToPath{Key: "strategy.py", Path: "strategy.py"})
	}
	if b.Spec.Model != nil && b.Spec.Model.Source != "" && b.Spec.Model.ConfigMapName == "" {
		items = append(items, corev1.KeyToPath{Key: "model.py", Path: "model.py"})
	}

	return corev1.Volume{
		Name: "config",
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: name},
				Items:                items,
			},
		},
	}
}
