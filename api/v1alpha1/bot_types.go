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

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// BotSpec is the desired state of a Bot.
type BotSpec struct {
	// Exchange is the name of the exchange the bot trades on.
	Exchange string `json:"exchange"`

	// Database is the connection string for the bot's database. Defaults to
	// an embedded sqlite database.
	// +optional
	Database string `json:"database,omitempty"`

	// Config is an opaque, open-schema mapping passed through verbatim as the
	// bot's primary configuration file.
	// +optional
	// +kubebuilder:pruning:PreserveUnknownFields
	Config *runtime.RawExtension `json:"config,omitempty"`

	// Strategy selects the trading strategy code to run.
	Strategy BotStrategySpec `json:"strategy"`

	// Model, if set, switches the bot into FreqAI model-enabled mode.
	// +optional
	Model *BotModelSpec `json:"model,omitempty"`

	// Image selects the container image to run.
	// +optional
	Image BotImageSpec `json:"image,omitempty"`

	// Secrets groups the credential material the bot needs.
	Secrets BotSecrets `json:"secrets,omitempty"`

	// API configures the bot's REST/websocket API server.
	// +optional
	API BotAPISpec `json:"api,omitempty"`

	// Service configures the optional Service fronting the bot's API.
	// +optional
	Service BotServiceSpec `json:"service,omitempty"`

	// PVC configures the optional PersistentVolumeClaim mounted into the bot.
	// +optional
	PVC BotPVCSpec `json:"pvc,omitempty"`

	// Deployment carries additional, advanced Deployment customization.
	// +optional
	Deployment BotDeploymentSpec `json:"deployment,omitempty"`
}

// BotStatus is the observed state of a Bot.
type BotStatus struct {
	// Phase is the last-observed lifecycle phase of the bot.
	// +optional
	Phase string `json:"phase,omitempty"`

	// LastUpdated is the timestamp of the last status transition.
	// +optional
	LastUpdated *metav1.Time `json:"lastUpdated,omitempty"`
}

// BotImageSpec selects the container image to run. Missing fields fall back
// to operator-wide defaults.
type BotImageSpec struct {
	// +optional
	Repository string `json:"repository,omitempty"`
	// +optional
	Tag string `json:"tag,omitempty"`
	// +optional
	PullPolicy corev1.PullPolicy `json:"pullPolicy,omitempty"`
	// +optional
	PullSecrets []string `json:"pullSecrets,omitempty"`
}

// BotSecrets groups the three credential bundles a bot may need.
type BotSecrets struct {
	// +optional
	Exchange *ExchangeSecrets `json:"exchange,omitempty"`
	// +optional
	API *APISecrets `json:"api,omitempty"`
	// +optional
	Telegram *TelegramSecrets `json:"telegram,omitempty"`
}

// APISecrets carries the credentials for the bot's REST API server.
type APISecrets struct {
	// +optional
	Username *SecretItem `json:"username,omitempty"`
	// +optional
	Password *SecretItem `json:"password,omitempty"`
	// +optional
	WSToken *SecretItem `json:"wsToken,omitempty"`
	// +optional
	JWTSecretKey *SecretItem `json:"jwtSecretKey,omitempty"`
}

// TelegramSecrets carries the bot's Telegram notification credentials.
type TelegramSecrets struct {
	// +optional
	Token *SecretItem `json:"token,omitempty"`
	// +optional
	ChatID string `json:"chatId,omitempty"`
}

// ExchangeSecrets carries the bot's exchange API credentials.
type ExchangeSecrets struct {
	// +optional
	Key *SecretItem `json:"key,omitempty"`
	// +optional
	Secret *SecretItem `json:"secret,omitempty"`
	// +optional
	Password *SecretItem `json:"password,omitempty"`
	// +optional
	UID *SecretItem `json:"uid,omitempty"`
}

// BotStrategySpec selects the trading strategy source.
type BotStrategySpec struct {
	// Name is the strategy class name.
	Name string `json:"name"`

	// ConfigMapName, if set, names a ConfigMap carrying a `strategy.py` key
	// to mount instead of inlining Source.
	// +optional
	ConfigMapName string `json:"configMapName,omitempty"`

	// Source is the inline strategy source code.
	// +optional
	Source string `json:"source,omitempty"`
}

// BotModelSpec selects the FreqAI model source.
type BotModelSpec struct {
	// Name is the model class name. Defaults to LightGBMRegressor.
	// +optional
	Name string `json:"name,omitempty"`

	// ConfigMapName, if set, names a ConfigMap carrying a `model.py` key to
	// mount instead of inlining Source.
	// +optional
	ConfigMapName string `json:"configMapName,omitempty"`

	// Source is the inline model source code.
	// +optional
	Source string `json:"source,omitempty"`
}

// BotAPISpec configures the bot's built-in API server.
type BotAPISpec struct {
	// +optional
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port int32 `json:"port,omitempty"`
}

// BotServiceSpec configures the optional Service exposing the bot's API.
type BotServiceSpec struct {
	// +optional
	Type corev1.ServiceType `json:"type,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	Ports []BotServicePort `json:"ports,omitempty"`
}

// BotServicePort is a single port exposed on the Service.
type BotServicePort struct {
	Name       string `json:"name"`
	Port       int32  `json:"port"`
	TargetPort string `json:"targetPort"`
}

// BotPVCSpec configures the optional PersistentVolumeClaim.
type BotPVCSpec struct {
	// +optional
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	StorageClass string `json:"storageClass,omitempty"`
	// +optional
	Size string `json:"size,omitempty"`
}

// BotDeploymentSpec carries advanced Deployment customization that is
// merged on top of the operator's generated Deployment.
type BotDeploymentSpec struct {
	// Command overrides the container's default command. The literal token
	// `$CMD` is replaced with the operator-computed default command.
	// +optional
	Command []string `json:"command,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`
	// +optional
	Affinity *corev1.Affinity `json:"affinity,omitempty"`
	// +optional
	Tolerations []corev1.Toleration `json:"tolerations,omitempty"`
	// +optional
	PodSecurityContext *corev1.PodSecurityContext `json:"podSecurityContext,omitempty"`
	// +optional
	SecurityContext *corev1.SecurityContext `json:"securityContext,omitempty"`
	// +optional
	Containers []corev1.Container `json:"containers,omitempty"`
	// +optional
	InitContainers []corev1.Container `json:"initContainers,omitempty"`
	// +optional
	Volumes []corev1.Volume `json:"volumes,omitempty"`
	// +optional
	VolumeMounts []corev1.VolumeMount `json:"volumeMounts,omitempty"`
	// +optional
	Env []corev1.EnvVar `json:"env,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=bots,scope=Namespaced
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Exchange",type="string",JSONPath=".spec.exchange"
// +kubebuilder:printcolumn:name="Last Updated",type="date",JSONPath=".status.lastUpdated"

// Bot is the Schema for the bots API. It describes a single-replica
// Freqtrade trading bot instance.
type Bot struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BotSpec   `json:"spec,omitempty"`
	Status BotStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BotList contains a list of Bot.
type BotList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bot `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Bot{}, &BotList{})
}
