//go:build !ignore_autogenerated

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

// Code generated by hand in the style of controller-gen object:headerFile. DO NOT EDIT lightly.

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *Bot) DeepCopyInto(out *Bot) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new Bot.
func (in *Bot) DeepCopy() *Bot {
	if in == nil {
		return nil
	}
	out := new(Bot)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *Bot) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotList) DeepCopyInto(out *BotList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		l := make([]Bot, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&l[i])
		}
		out.Items = l
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotList.
func (in *BotList) DeepCopy() *BotList {
	if in == nil {
		return nil
	}
	out := new(BotList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject is a deepcopy function, copying the receiver, creating a new runtime.Object.
func (in *BotList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotSpec) DeepCopyInto(out *BotSpec) {
	*out = *in
	if in.Config != nil {
		out.Config = in.Config.DeepCopy()
	}
	in.Strategy.DeepCopyInto(&out.Strategy)
	if in.Model != nil {
		out.Model = new(BotModelSpec)
		(*in.Model).DeepCopyInto(out.Model)
	}
	in.Image.DeepCopyInto(&out.Image)
	in.Secrets.DeepCopyInto(&out.Secrets)
	out.API = in.API
	in.Service.DeepCopyInto(&out.Service)
	in.PVC.DeepCopyInto(&out.PVC)
	in.Deployment.DeepCopyInto(&out.Deployment)
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotSpec.
func (in *BotSpec) DeepCopy() *BotSpec {
	if in == nil {
		return nil
	}
	out := new(BotSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotStatus) DeepCopyInto(out *BotStatus) {
	*out = *in
	if in.LastUpdated != nil {
		out.LastUpdated = in.LastUpdated.DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotStatus.
func (in *BotStatus) DeepCopy() *BotStatus {
	if in == nil {
		return nil
	}
	out := new(BotStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotImageSpec) DeepCopyInto(out *BotImageSpec) {
	*out = *in
	if in.PullSecrets != nil {
		l := make([]string, len(in.PullSecrets))
		copy(l, in.PullSecrets)
		out.PullSecrets = l
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotImageSpec.
func (in *BotImageSpec) DeepCopy() *BotImageSpec {
	if in == nil {
		return nil
	}
	out := new(BotImageSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotSecrets) DeepCopyInto(out *BotSecrets) {
	*out = *in
	if in.Exchange != nil {
		out.Exchange = new(ExchangeSecrets)
		(*in.Exchange).DeepCopyInto(out.Exchange)
	}
	if in.API != nil {
		out.API = new(APISecrets)
		(*in.API).DeepCopyInto(out.API)
	}
	if in.Telegram != nil {
		out.Telegram = new(TelegramSecrets)
		(*in.Telegram).DeepCopyInto(out.Telegram)
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotSecrets.
func (in *BotSecrets) DeepCopy() *BotSecrets {
	if in == nil {
		return nil
	}
	out := new(BotSecrets)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *APISecrets) DeepCopyInto(out *APISecrets) {
	*out = *in
	if in.Username != nil {
		out.Username = in.Username.DeepCopy()
	}
	if in.Password != nil {
		out.Password = in.Password.DeepCopy()
	}
	if in.WSToken != nil {
		out.WSToken = in.WSToken.DeepCopy()
	}
	if in.JWTSecretKey != nil {
		out.JWTSecretKey = in.JWTSecretKey.DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new APISecrets.
func (in *APISecrets) DeepCopy() *APISecrets {
	if in == nil {
		return nil
	}
	out := new(APISecrets)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *TelegramSecrets) DeepCopyInto(out *TelegramSecrets) {
	*out = *in
	if in.Token != nil {
		out.Token = in.Token.DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new TelegramSecrets.
func (in *TelegramSecrets) DeepCopy() *TelegramSecrets {
	if in == nil {
		return nil
	}
	out := new(TelegramSecrets)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *ExchangeSecrets) DeepCopyInto(out *ExchangeSecrets) {
	*out = *in
	if in.Key != nil {
		out.Key = in.Key.DeepCopy()
	}
	if in.Secret != nil {
		out.Secret = in.Secret.DeepCopy()
	}
	if in.Password != nil {
		out.Password = in.Password.DeepCopy()
	}
	if in.UID != nil {
		out.UID = in.UID.DeepCopy()
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new ExchangeSecrets.
func (in *ExchangeSecrets) DeepCopy() *ExchangeSecrets {
	if in == nil {
		return nil
	}
	out := new(ExchangeSecrets)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotStrategySpec) DeepCopyInto(out *BotStrategySpec) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotStrategySpec.
func (in *BotStrategySpec) DeepCopy() *BotStrategySpec {
	if in == nil {
		return nil
	}
	out := new(BotStrategySpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotModelSpec) DeepCopyInto(out *BotModelSpec) {
	*out = *in
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotModelSpec.
func (in *BotModelSpec) DeepCopy() *BotModelSpec {
	if in == nil {
		return nil
	}
	out := new(BotModelSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotServiceSpec) DeepCopyInto(out *BotServiceSpec) {
	*out = *in
	if in.Annotations != nil {
		m := make(map[string]string, len(in.Annotations))
		for k, v := range in.Annotations {
			m[k] = v
		}
		out.Annotations = m
	}
	if in.Labels != nil {
		m := make(map[string]string, len(in.Labels))
		for k, v := range in.Labels {
			m[k] = v
		}
		out.Labels = m
	}
	if in.Ports != nil {
		l := make([]BotServicePort, len(in.Ports))
		copy(l, in.Ports)
		out.Ports = l
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotServiceSpec.
func (in *BotServiceSpec) DeepCopy() *BotServiceSpec {
	if in == nil {
		return nil
	}
	out := new(BotServiceSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotPVCSpec) DeepCopyInto(out *BotPVCSpec) {
	*out = *in
	if in.Annotations != nil {
		m := make(map[string]string, len(in.Annotations))
		for k, v := range in.Annotations {
			m[k] = v
		}
		out.Annotations = m
	}
	if in.Labels != nil {
		m := make(map[string]string, len(in.Labels))
		for k, v := range in.Labels {
			m[k] = v
		}
		out.Labels = m
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotPVCSpec.
func (in *BotPVCSpec) DeepCopy() *BotPVCSpec {
	if in == nil {
		return nil
	}
	out := new(BotPVCSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto is a deepcopy function, copying the receiver, writing into out. in must be non-nil.
func (in *BotDeploymentSpec) DeepCopyInto(out *BotDeploymentSpec) {
	*out = *in
	if in.Command != nil {
		l := make([]string, len(in.Command))
		copy(l, in.Command)
		out.Command = l
	}
	if in.Annotations != nil {
		m := make(map[string]string, len(in.Annotations))
		for k, v := range in.Annotations {
			m[k] = v
		}
		out.Annotations = m
	}
	if in.Labels != nil {
		m := make(map[string]string, len(in.Labels))
		for k, v := range in.Labels {
			m[k] = v
		}
		out.Labels = m
	}
	if in.NodeSelector != nil {
		m := make(map[string]string, len(in.NodeSelector))
		for k, v := range in.NodeSelector {
			m[k] = v
		}
		out.NodeSelector = m
	}
	if in.Resources != nil {
		out.Resources = in.Resources.DeepCopy()
	}
	if in.Affinity != nil {
		out.Affinity = in.Affinity.DeepCopy()
	}
	if in.Tolerations != nil {
		l := make([]corev1.Toleration, len(in.Tolerations))
		copy(l, in.Tolerations)
		out.Tolerations = l
	}
	if in.PodSecurityContext != nil {
		out.PodSecurityContext = in.PodSecurityContext.DeepCopy()
	}
	if in.SecurityContext != nil {
		out.SecurityContext = in.SecurityContext.DeepCopy()
	}
	if in.Containers != nil {
		l := make([]corev1.Container, len(in.Containers))
		for i := range in.Containers {
			in.Containers[i].DeepCopyInto(&l[i])
		}
		out.Containers = l
	}
	if in.InitContainers != nil {
		l := make([]corev1.Container, len(in.InitContainers))
		for i := range in.InitContainers {
			in.InitContainers[i].DeepCopyInto(&l[i])
		}
		out.InitContainers = l
	}
	if in.Volumes != nil {
		l := make([]corev1.Volume, len(in.Volumes))
		for i := range in.Volumes {
			in.Volumes[i].DeepCopyInto(&l[i])
		}
		out.Volumes = l
	}
	if in.VolumeMounts != nil {
		l := make([]corev1.VolumeMount, len(in.VolumeMounts))
		copy(l, in.VolumeMounts)
		out.VolumeMounts = l
	}
	if in.Env != nil {
		l := make([]corev1.EnvVar, len(in.Env))
		for i := range in.Env {
			in.Env[i].DeepCopyInto(&l[i])
		}
		out.Env = l
	}
}

// DeepCopy is a deepcopy function, copying the receiver, creating a new BotDeploymentSpec.
func (in *BotDeploymentSpec) DeepCopy() *BotDeploymentSpec {
	if in == nil {
		return nil
	}
	out := new(BotDeploymentSpec)
	in.DeepCopyInto(out)
	return out
}
