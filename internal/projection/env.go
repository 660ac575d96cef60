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
	"strconv"

	corev1 "k8s.io/api/core/v1"

	"github.com/freqtrade-operator/operator/internal/hub"
)

// envVar builds a plain environment variable. A nil value yields an EnvVar
// with neither Value nor ValueFrom set, matching the original's behavior of
// emitting the variable name with no value rather than omitting it.
func envVar(name string, value *string) corev1.EnvVar {
	v := corev1.EnvVar{Name: name}
	if value != nil {
		v.Value = *value
	}
	return v
}

func strPtr(s string) *string { return &s }

// secretEnvVar builds an environment variable sourced from a hub.SecretItem:
// an inline value takes the Value branch, a SecretKeyRef takes the
// ValueFrom branch, and a nil item yields an empty, unset variable.
func secretEnvVar(name string, item *hub.SecretItem) corev1.EnvVar {
	if item == nil {
		return corev1.EnvVar{Name: name}
	}
	if item.SecretKeyRef != nil {
		return corev1.EnvVar{
			Name: name,
			ValueFrom: &corev1.EnvVarSource{
				SecretKeyRef: &corev1.SecretKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: item.SecretKeyRef.Name},
					Key:                  item.SecretKeyRef.Key,
				},
			},
		}
	}
	return corev1.EnvVar{Name: name, Value: item.Value}
}

// botEnvVars builds the fixed-order environment variable list injected
// into the bot container, mirroring the original controller's env
// construction in its From<Bot> for Deployment impl.
func botEnvVars(b *hub.Bot) []corev1.EnvVar {
	spec := b.Spec
	secrets := spec.Secrets

	vars := []corev1.EnvVar{
		envVar("FREQTRADE__STRATEGY", strPtr(spec.Strategy.Name)),
		envVar("FREQTRADE__STRATEGY_PATH", strPtr("/etc/freqtrade")),
		envVar("FREQTRADE__FREQAIMODEL_PATH", strPtr("/etc/freqtrade")),
		envVar("FREQTRADE__DB_URL", strPtr(spec.Database)),
		envVar("FREQTRADE__BOT_NAME", strPtr(b.Name)),
		envVar("FREQTRADE__API_SERVER__ENABLED", strPtr(strconv.FormatBool(spec.API.Enabled))),
		envVar("FREQTRADE__API_SERVER__LISTEN_IP_ADDRESS", strPtr(spec.API.Host)),
		envVar("FREQTRADE__API_SERVER__LISTEN_PORT", strPtr(strconv.Itoa(int(spec.API.Port)))),
		envVar("FREQTRADE__EXCHANGE__NAME", strPtr(spec.Exchange)),
	}

	if secrets.Telegram != nil {
		vars = append(vars, envVar("FREQTRADE__TELEGRAM__CHAT_ID", strPtr(secrets.Telegram.ChatID)))
	} else {
		vars = append(vars, envVar("FREQTRADE__TELEGRAM__CHAT_ID", nil))
	}

	if secrets.API != nil {
		vars = append(vars,
			secretEnvVar("FREQTRADE__API_SERVER__USERNAME", secrets.API.Username),
			secretEnvVar("FREQTRADE__API_SERVER__PASSWORD", secrets.API.Password),
			secretEnvVar("FREQTRADE__API_SERVER__WS_TOKEN", secrets.API.WSToken),
			secretEnvVar("FREQTRADE__API_SERVER__JWT_SECRET_KEY", secrets.API.JWTSecretKey),
		)
	} else {
		vars = append(vars,
			envVar("FREQTRADE__API_SERVER__USERNAME", nil),
			envVar("FREQTRADE__API_SERVER__PASSWORD", nil),
			envVar("FREQTRADE__API_SERVER__WS_TOKEN", nil),
			envVar("FREQTRADE__API_SERVER__JWT_SECRET_KEY", nil),
		)
	}

	if secrets.Telegram != nil {
		vars = append(vars, secretEnvVar("FREQTRADE__TELEGRAM__TOKEN", secrets.Telegram.Token))
	} else {
		vars = append(vars, envVar("FREQTRADE__TELEGRAM__TOKEN", nil))
	}

	if secrets.Exchange != nil {
		vars = append(vars,
			secretEnvVar("FREQTRADE__EXCHANGE__KEY", secrets.Exchange.Key),
			secretEnvVar("FREQTRADE__EXCHANGE__SECRET", secrets.Exchange.Secret),
			secretEnvVar("FREQTRADE__EXCHANGE__PASSWORD", secrets.Exchange.Password),
			secretEnvVar("FREQTRADE__EXCHANGE__UID", secrets.Exchange.UID),
		)
	} else {
		vars = append(vars,
			envVar("FREQTRADE__EXCHANGE__KEY", nil),
			envVar("FREQTRADE__EXCHANGE__SECRET", nil),
			envVar("FREQTRADE__EXCHANGE__PASSWORD", nil),
			envVar("FREQTRADE__EXCHANGE__UID", nil),
		)
	}

	if spec.Model != nil {
		vars = append(vars, envVar("FREQTRADE__FREQAI__ENABLED", strPtr("true")))
	}

	vars = append(vars, spec.Deployment.Env...)

	return vars
}
