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
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	. "github.com/onsi/gomega"

	"github.com/freqtrade-operator/operator/internal/hub"
)

func TestDerivePhasePendingWithNoConditions(t *testing.T) {
	g := NewWithT(t)
	g.Expect(derivePhase(appsv1.DeploymentStatus{})).To(Equal(hub.BotPhasePending))
}

// TestDerivePhaseRunningOnAvailable covers spec scenario S5: an
// Available=True condition drives the phase to running.
func TestDerivePhaseRunningOnAvailable(t *testing.T) {
	g := NewWithT(t)

	status := appsv1.DeploymentStatus{
		Conditions: []appsv1.DeploymentCondition{
			{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionTrue},
		},
	}
	g.Expect(derivePhase(status)).To(Equal(hub.BotPhaseRunning))
}

func TestDerivePhaseErrorOnProgressingFalse(t *testing.T) {
	g := NewWithT(t)

	status := appsv1.DeploymentStatus{
		Conditions: []appsv1.DeploymentCondition{
			{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionTrue},
			{Type: appsv1.DeploymentProgressing, Status: corev1.ConditionFalse},
		},
	}
	g.Expect(derivePhase(status)).To(Equal(hub.BotPhaseError))
}

func TestDerivePhasePendingWhenNeitherConditionMatches(t *testing.T) {
	g := NewWithT(t)

	status := appsv1.DeploymentStatus{
		Conditions: []appsv1.DeploymentCondition{
			{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionFalse},
			{Type: appsv1.DeploymentProgressing, Status: corev1.ConditionTrue},
		},
	}
	g.Expect(derivePhase(status)).To(Equal(hub.BotPhasePending))
}
