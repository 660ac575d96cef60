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

// Package hub holds the version-agnostic internal representation of a Bot
// that every downstream component (projection, drift detection, the
// reconciler) operates on exclusively. It is never registered with a
// runtime scheme: promoting a wire type into hub form is the only place
// that needs to know about the wire schema.
package hub

import (
	"encoding/json"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	v1alpha1 "github.com/freqtrade-operator/operator/api/v1alpha1"
)

// BotPhase is the lifecycle phase of a Bot, derived from the projected
// Deployment's status conditions.
type BotPhase string

const (
	BotPhasePending  BotPhase = "pending"
	BotPhaseRunning  BotPhase = "running"
	BotPhaseError    BotPhase = "error"
	BotPhaseDeleting BotPhase = "deleting"
)

func (p BotPhase) String() string {
	return string(p)
}

// Bot is the internal, defaulted representation of a v1alpha1.Bot.
type Bot struct {
	Name      string
	Namespace string
	Spec      BotSpec
	Status    *BotStatus
}

// BotStatus mirrors v1alpha1.BotStatus after promotion.
type BotStatus struct {
	Phase       BotPhase
	LastUpdated *metav1.Time
}

// BotSpec is the defaulted, version-agnostic Bot spec.
type BotSpec struct {
	Exchange   string
	Database   string
	Config     map[string]interface{}
	Strategy   BotStrategySpec
	Model      *BotModelSpec
	Image      BotImageSpec
	Secrets    BotSecrets
	API        BotAPISpec
	Service    BotServiceSpec
	PVC        BotPVCSpec
	Deployment BotDeploymentSpec
}

type BotImageSpec struct {
	Repository  string
	Tag         string
	PullPolicy  corev1.PullPolicy
	PullSecrets []string
}

type BotSecrets struct {
	Exchange *ExchangeSecrets
	API      *APISecrets
	Telegram *TelegramSecrets
}

type APISecrets struct {
	Username     *SecretItem
	Password     *SecretItem
	WSToken      *SecretItem
	JWTSecretKey *SecretItem
}

type TelegramSecrets struct {
	Token  *SecretItem
	ChatID string
}

type ExchangeSecrets struct {
	Key      *SecretItem
	Secret   *SecretItem
	Password *SecretItem
	UID      *SecretItem
}

// SecretItem is the hub-side tagged union mirroring v1alpha1.SecretItem:
// exactly one of Value or SecretKeyRef is meaningful.
type SecretItem struct {
	Value        string
	SecretKeyRef *SecretKeyRef
}

type SecretKeyRef struct {
	Name string
	Key  string
}

type BotStrategySpec struct {
	Name          string
	ConfigMapName string
	Source        string
}

type BotModelSpec struct {
	Name          string
	ConfigMapName string
	Source        string
}

type BotAPISpec struct {
	Enabled bool
	Host    string
	Port    int32
}

type BotServiceSpec struct {
	Type        corev1.ServiceType
	Annotations map[string]string
	Labels      map[string]string
	Ports       []BotServicePort
}

type BotServicePort struct {
	Name       string
	Port       int32
	TargetPort string
}

// EnsureAPIPort appends an `api`-named port if one isn't already declared,
// mirroring the original's BotServiceSpec::ensure_api_port.
func (s *BotServiceSpec) EnsureAPIPort(apiPort int32) {
	for _, p := range s.Ports {
		if p.Name == "api" {
			return
		}
	}
	s.Ports = append(s.Ports, BotServicePort{
		Name:       "api",
		Port:       apiPort,
		TargetPort: "api",
	})
}

type BotPVCSpec struct {
	Enabled      bool
	Annotations  map[string]string
	Labels       map[string]string
	StorageClass string
	Size         string
}

// BotDeploymentSpec carries the advanced Deployment customization knobs,
// kept as the corev1 types they'll ultimately be merged into so projection
// doesn't need to re-decode anything.
type BotDeploymentSpec struct {
	Command            []string
	Annotations        map[string]string
	Labels             map[string]string
	NodeSelector       map[string]string
	Resources          *corev1.ResourceRequirements
	Affinity           *corev1.Affinity
	Tolerations        []corev1.Toleration
	PodSecurityContext *corev1.PodSecurityContext
	SecurityContext    *corev1.SecurityContext
	Containers         []corev1.Container
	InitContainers     []corev1.Container
	Volumes            []corev1.Volume
	VolumeMounts       []corev1.VolumeMount
	Env                []corev1.EnvVar
}

// FromV1Alpha1 promotes a wire-version Bot into its hub representation,
// applying the defaulting that the v1alpha1 type leaves implicit (the wire
// type's Go zero values double as "unset"; hub fills in the operator's
// actual defaults here instead of relying on struct-tag defaulting, which
// Go's encoding/json does not support the way serde does).
func FromV1Alpha1(bot *v1alpha1.Bot) *Bot {
	spec := bot.Spec

	out := &Bot{
		Name:      bot.Name,
		Namespace: bot.Namespace,
		Spec: BotSpec{
			Exchange: spec.Exchange,
			Database: defaultString(spec.Database, "sqlite:///database.db"),
			Config:   decodeConfig(spec.Config),
			Strategy: BotStrategySpec{
				Name:          spec.Strategy.Name,
				ConfigMapName: spec.Strategy.ConfigMapName,
				Source:        spec.Strategy.Source,
			},
			Image: BotImageSpec{
				Repository:  spec.Image.Repository,
				Tag:         spec.Image.Tag,
				PullPolicy:  spec.Image.PullPolicy,
				PullSecrets: spec.Image.PullSecrets,
			},
			Secrets: convertSecrets(spec.Secrets),
			API: BotAPISpec{
				Enabled: spec.API.Enabled,
				Host:    defaultString(spec.API.Host, "0.0.0.0"),
				Port:    defaultInt32(spec.API.Port, 8080),
			},
			Service: convertService(spec.Service),
			PVC: BotPVCSpec{
				Enabled:      spec.PVC.Enabled,
				Annotations:  spec.PVC.Annotations,
				Labels:       spec.PVC.Labels,
				StorageClass: spec.PVC.StorageClass,
				Size:         defaultString(spec.PVC.Size, "1Gi"),
			},
			Deployment: BotDeploymentSpec{
				Command:            spec.Deployment.Command,
				Annotations:        spec.Deployment.Annotations,
				Labels:             spec.Deployment.Labels,
				NodeSelector:       spec.Deployment.NodeSelector,
				Resources:          spec.Deployment.Resources,
				Affinity:           spec.Deployment.Affinity,
				Tolerations:        spec.Deployment.Tolerations,
				PodSecurityContext: spec.Deployment.PodSecurityContext,
				SecurityContext:    spec.Deployment.SecurityContext,
				Containers:         spec.Deployment.Containers,
				InitContainers:     spec.Deployment.InitContainers,
				Volumes:            spec.Deployment.Volumes,
				VolumeMounts:       spec.Deployment.VolumeMounts,
				Env:                spec.Deployment.Env,
			},
		},
	}

	if spec.Model != nil {
		out.Spec.Model = &BotModelSpec{
			Name:          defaultString(spec.Model.Name, "LightGBMRegressor"),
			ConfigMapName: spec.Model.ConfigMapName,
			Source:        spec.Model.Source,
		}
	}

	if bot.Status.Phase != "" || bot.Status.LastUpdated != nil {
		out.Status = &BotStatus{
			Phase:       BotPhase(bot.Status.Phase),
			LastUpdated: bot.Status.LastUpdated,
		}
	}

	return out
}

func convertSecrets(s v1alpha1.BotSecrets) BotSecrets {
	var out BotSecrets
	if s.Exchange != nil {
		out.Exchange = &ExchangeSecrets{
			Key:      convertSecretItem(s.Exchange.Key),
			Secret:   convertSecretItem(s.Exchange.Secret),
			Password: convertSecretItem(s.Exchange.Password),
			UID:      convertSecretItem(s.Exchange.UID),
		}
	}
	if s.API != nil {
		out.API = &APISecrets{
			Username:     convertSecretItem(s.API.Username),
			Password:     convertSecretItem(s.API.Password),
			WSToken:      convertSecretItem(s.API.WSToken),
			JWTSecretKey: convertSecretItem(s.API.JWTSecretKey),
		}
	}
	if s.Telegram != nil {
		out.Telegram = &TelegramSecrets{
			Token:  convertSecretItem(s.Telegram.Token),
			ChatID: s.Telegram.ChatID,
		}
	}
	return out
}

func convertSecretItem(in *v1alpha1.SecretItem) *SecretItem {
	if in == nil {
		return nil
	}
	out := &SecretItem{Value: in.Value}
	if in.SecretKeyRef != nil {
		out.SecretKeyRef = &SecretKeyRef{Name: in.SecretKeyRef.Name, Key: in.SecretKeyRef.Key}
	}
	return out
}

func convertService(s v1alpha1.BotServiceSpec) BotServiceSpec {
	out := BotServiceSpec{
		Type:        s.Type,
		Annotations: s.Annotations,
		Labels:      s.Labels,
	}
	if out.Type == "" {
		out.Type = corev1.ServiceTypeClusterIP
	}
	for _, p := range s.Ports {
		out.Ports = append(out.Ports, BotServicePort{Name: p.Name, Port: p.Port, TargetPort: p.TargetPort})
	}
	return out
}

// decodeConfig unmarshals the open-schema config field into a plain map so
// projection can re-marshal it deterministically (encoding/json writes map
// keys in sorted order) without round-tripping through RawExtension. An
// unset field decodes to nil, so the projected config.json is the literal
// JSON value `null` rather than an empty object.
func decodeConfig(raw *runtime.RawExtension) map[string]interface{} {
	if raw == nil || len(raw.Raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw.Raw, &out); err != nil {
		return nil
	}
	return out
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultInt32(v, fallback int32) int32 {
	if v == 0 {
		return fallback
	}
	return v
}
