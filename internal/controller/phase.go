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

package controller

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/freqtrade-operator/operator/internal/hub"
)

// derivePhase inspects a Deployment's status conditions to decide the bot's
// lifecycle phase: a Progressing=False condition means something is wrong,
// otherwise an Available=True condition means the bot is running, and
// anything else (including no conditions at all) means the bot is still
// coming up.
func derivePhase(status appsv1.DeploymentStatus) hub.BotPhase {
	for _, c := range status.Conditions {
		if c.Type == appsv1.DeploymentProgressing && c.Status == corev1.ConditionFalse {
			return hub.BotPhaseError
		}
	}
	for _, c := range status.Conditions {
		if c.Type == appsv1.DeploymentAvailable && c.Status == corev1.ConditionTrue {
			return hub.BotPhaseRunning
		}
	}
	return hub.BotPhasePending
}
