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

// Package drift decides whether an observed cluster object has diverged
// from the object the operator would project today, so the reconciler only
// issues a write when one is actually needed. Divergence is asymmetric:
// a field the operator cares about and the observed object lacks or
// disagrees with is drift, but fields the operator leaves unset (server-side
// defaulting) are tolerated.
package drift

import (
	"reflect"
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

// ConfigMap reports drift when the observed and desired data maps differ.
func ConfigMap(observed, desired *corev1.ConfigMap) bool {
	return !reflect.DeepEqual(observed.Data, desired.Data)
}

// PVC reports drift in storage class (only when both sides specify one) and
// resource requests. Whether a PVC exists at all is the reconciler's
// concern, not this function's: both arguments are assumed non-nil.
func PVC(observed, desired *corev1.PersistentVolumeClaim) bool {
	o, d := observed.Spec, desired.Spec

	if o.StorageClassName != nil && d.StorageClassName != nil && *o.StorageClassName != *d.StorageClassName {
		return true
	}
	return !reflect.DeepEqual(o.Resources, d.Resources)
}

// Service reports drift in type, selector, and per-port name/port/target
// port/protocol (protocol defaulting to TCP when unset on either side).
func Service(observed, desired *corev1.Service) bool {
	o, d := observed.Spec, desired.Spec

	if o.Type != d.Type {
		return true
	}
	if !reflect.DeepEqual(o.Selector, d.Selector) {
		return true
	}

	n := len(o.Ports)
	if len(d.Ports) < n {
		n = len(d.Ports)
	}
	for i := 0; i < n; i++ {
		op, dp := o.Ports[i], d.Ports[i]
		if op.Port != dp.Port || op.Name != dp.Name || op.TargetPort != dp.TargetPort ||
			protocolOrTCP(op.Protocol) != protocolOrTCP(dp.Protocol) {
			return true
		}
	}
	return false
}

func protocolOrTCP(p corev1.Protocol) corev1.Protocol {
	if p == "" {
		return corev1.ProtocolTCP
	}
	return p
}

// Deployment reports drift across replicas, container shape (image,
// command, ports, pull policy, env, volume mounts, resources), pod-level
// volumes, node selector, affinity, tolerations, pod/container security
// contexts, and image pull secrets. Many comparisons are "only if both
// sides set a value" to tolerate server-side defaulting.
func Deployment(observed, desired *appsv1.Deployment) bool {
	oSpec, dSpec := &observed.Spec, &desired.Spec

	if !replicasEqual(oSpec.Replicas, dSpec.Replicas) {
		return true
	}

	oPod := oSpec.Template.Spec
	dPod := dSpec.Template.Spec

	if len(oPod.Containers) != len(dPod.Containers) {
		return true
	}
	for i := range oPod.Containers {
		if containersDiffer(oPod.Containers[i], dPod.Containers[i]) {
			return true
		}
	}

	if volumesDiffer(oPod.Volumes, dPod.Volumes) {
		return true
	}

	if len(oPod.NodeSelector) > 0 && len(dPod.NodeSelector) > 0 && !reflect.DeepEqual(oPod.NodeSelector, dPod.NodeSelector) {
		return true
	}

	if !reflect.DeepEqual(oPod.Affinity, dPod.Affinity) {
		return true
	}

	if !reflect.DeepEqual(oPod.Tolerations, dPod.Tolerations) {
		return true
	}

	if oPod.SecurityContext != nil && dPod.SecurityContext != nil && !reflect.DeepEqual(oPod.SecurityContext, dPod.SecurityContext) {
		return true
	}

	if !reflect.DeepEqual(oPod.ImagePullSecrets, dPod.ImagePullSecrets) {
		return true
	}

	return false
}

func replicasEqual(a, b *int32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func containersDiffer(o, d corev1.Container) bool {
	if o.Image != d.Image || !reflect.DeepEqual(o.Command, d.Command) {
		return true
	}
	if containerPortsDiffer(o.Ports, d.Ports) {
		return true
	}
	if o.ImagePullPolicy != "" && d.ImagePullPolicy != "" && o.ImagePullPolicy != d.ImagePullPolicy {
		return true
	}
	if envVarsDiffer(o.Env, d.Env) {
		return true
	}
	if !reflect.DeepEqual(o.VolumeMounts, d.VolumeMounts) {
		return true
	}
	if o.Resources.Limits != nil || o.Resources.Requests != nil {
		if d.Resources.Limits != nil || d.Resources.Requests != nil {
			if !reflect.DeepEqual(o.Resources, d.Resources) {
				return true
			}
		}
	}
	if o.SecurityContext != nil && d.SecurityContext != nil {
		if !reflect.DeepEqual(o.SecurityContext, d.SecurityContext) {
			return true
		}
	}
	return false
}

func containerPortsDiffer(a, b []corev1.ContainerPort) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i].ContainerPort != b[i].ContainerPort || a[i].Name != b[i].Name ||
			protocolOrTCP(a[i].Protocol) != protocolOrTCP(b[i].Protocol) {
			return true
		}
	}
	return false
}

func envVarsDiffer(a, b []corev1.EnvVar) bool {
	if len(a) != len(b) {
		return true
	}
	sa := append([]corev1.EnvVar(nil), a...)
	sb := append([]corev1.EnvVar(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i].Name < sa[j].Name })
	sort.Slice(sb, func(i, j int) bool { return sb[i].Name < sb[j].Name })
	return !reflect.DeepEqual(sa, sb)
}

func volumesDiffer(a, b []corev1.Volume) bool {
	if len(a) != len(b) {
		return true
	}
	sa := append([]corev1.Volume(nil), a...)
	sb := append([]corev1.Volume(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i].Name < sa[j].Name })
	sort.Slice(sb, func(i, j int) bool { return sb[i].Name < sb[j].Name })

	for i := range sa {
		if !volumesEqual(sa[i], sb[i]) {
			return true
		}
	}
	return false
}

// volumesEqual tolerates a ConfigMap volume's DefaultMode of nil on one side
// and the Kubernetes API server's default of 420 (0644) on the other.
func volumesEqual(a, b corev1.Volume) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}

	if a.ConfigMap == nil && b.ConfigMap == nil {
		return reflect.DeepEqual(a, b)
	}
	if a.ConfigMap == nil || b.ConfigMap == nil {
		return false
	}

	if a.Name != b.Name {
		return false
	}
	if a.ConfigMap.Name != b.ConfigMap.Name {
		return false
	}
	if !reflect.DeepEqual(a.ConfigMap.Items, b.ConfigMap.Items) {
		return false
	}
	if !optionalBoolEqual(a.ConfigMap.Optional, b.ConfigMap.Optional) {
		return false
	}
	return defaultModeEqual(a.ConfigMap.DefaultMode, b.ConfigMap.DefaultMode)
}

func optionalBoolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func defaultModeEqual(a, b *int32) bool {
	const serverDefault = int32(420)
	av, bv := serverDefault, serverDefault
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}
