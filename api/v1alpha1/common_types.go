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

package v1alpha1

// SecretItem is a value that is either provided inline or sourced from a
// Secret in the same namespace. Exactly one of Value or SecretKeyRef should
// be set; if both are set, SecretKeyRef takes precedence.
type SecretItem struct {
	// Value is the literal value of the secret.
	// +optional
	Value string `json:"value,omitempty"`

	// SecretKeyRef references a key within a Secret in the same namespace.
	// +optional
	SecretKeyRef *SecretKeySelector `json:"secretKeyRef,omitempty"`
}

// SecretKeySelector selects a key of a Secret in the Bot's namespace.
type SecretKeySelector struct {
	// Name of the Secret to reference.
	Name string `json:"name"`

	// Key within the Secret to reference.
	Key string `json:"key"`
}

// DeepCopyInto copies the receiver into out.
func (in *SecretItem) DeepCopyInto(out *SecretItem) {
	*out = *in
	if in.SecretKeyRef != nil {
		out.SecretKeyRef = new(SecretKeySelector)
		*out.SecretKeyRef = *in.SecretKeyRef
	}
}

// DeepCopy returns a deep copy of the receiver.
func (in *SecretItem) DeepCopy() *SecretItem {
	if in == nil {
		return nil
	}
	out := new(SecretItem)
	in.DeepCopyInto(out)
	return out
}
