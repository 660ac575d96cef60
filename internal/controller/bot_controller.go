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

// Package controller reconciles Bot custom resources into their projected
// ConfigMap, PersistentVolumeClaim, Deployment, and Service.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	v1alpha1 "github.com/freqtrade-operator/operator/api/v1alpha1"
	"github.com/freqtrade-operator/operator/internal/config"
	"github.com/freqtrade-operator/operator/internal/drift"
	"github.com/freqtrade-operator/operator/internal/hub"
	"github.com/freqtrade-operator/operator/internal/projection"
)

const (
	// BotFinalizer blocks deletion of a Bot until its dependent objects
	// have been handed back to garbage collection.
	BotFinalizer = "bots.finalizers.freqtrade.io"

	// configHashAnnotation records, on the Deployment, the hash of the
	// most recently projected ConfigMap data. It is set on first
	// materialization without a rollout; later changes to it trigger one.
	configHashAnnotation = "bots.freqtrade.io/config-hash"

	// restartedAtAnnotation, set on the pod template, forces a rollout on
	// config-content changes the Deployment spec wouldn't otherwise notice.
	restartedAtAnnotation = "kube.kubernetes.io/restartedAt"

	// FieldManager identifies this operator's writes for server-side apply.
	FieldManager = "bots.freqtrade.io/operator"

	requeueInterval = 30 * time.Second
)

// BotReconciler reconciles a Bot object.
type BotReconciler struct {
	client.Client
	Config *config.AppConfig
}

// Reconcile implements the core reconciliation loop: ensure the finalizer,
// branch on deletion, and otherwise drive the bot towards its desired
// state.
func (r *BotReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	var bot v1alpha1.Bot
	if err := r.Get(ctx, req.NamespacedName, &bot); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !bot.DeletionTimestamp.IsZero() {
		return r.reconcileDelete(ctx, &bot)
	}

	if !controllerutil.ContainsFinalizer(&bot, BotFinalizer) {
		controllerutil.AddFinalizer(&bot, BotFinalizer)
		if err := r.Update(ctx, &bot); err != nil {
			return ctrl.Result{}, fmt.Errorf("adding finalizer: %w", err)
		}
		return ctrl.Result{}, nil
	}

	log.Info("Reconciling bot", "bot", bot.Name)

	return r.reconcileBot(ctx, &bot)
}

func (r *BotReconciler) reconcileDelete(ctx context.Context, bot *v1alpha1.Bot) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(bot, BotFinalizer) {
		return ctrl.Result{}, nil
	}

	if err := r.updateStatus(ctx, bot, hub.BotPhaseDeleting); err != nil {
		return ctrl.Result{}, err
	}

	controllerutil.RemoveFinalizer(bot, BotFinalizer)
	if err := r.Update(ctx, bot); err != nil {
		return ctrl.Result{}, fmt.Errorf("removing finalizer: %w", err)
	}

	return ctrl.Result{}, nil
}

func (r *BotReconciler) reconcileBot(ctx context.Context, bot *v1alpha1.Bot) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	name, namespace := bot.Name, bot.Namespace
	if namespace == "" {
		return ctrl.Result{}, fmt.Errorf("missing precondition: expected bot %q to be namespaced via metadata.namespace", name)
	}
	if name == "" || bot.UID == "" {
		return ctrl.Result{}, fmt.Errorf("missing precondition: expected bot to have a computable controller owner reference")
	}
	ownerRef := metav1.NewControllerRef(bot, v1alpha1.GroupVersion.WithKind("Bot"))

	hubBot := hub.FromV1Alpha1(bot)
	desired := projection.Project(hubBot, name, namespace, *ownerRef, r.Config)

	var observedConfigMap corev1.ConfigMap
	configMapExists, err := r.fetch(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &observedConfigMap)
	if err != nil {
		return ctrl.Result{}, err
	}

	var observedPVC corev1.PersistentVolumeClaim
	pvcExists, err := r.fetch(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &observedPVC)
	if err != nil {
		return ctrl.Result{}, err
	}

	var observedDeployment appsv1.Deployment
	deploymentExists, err := r.fetch(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &observedDeployment)
	if err != nil {
		return ctrl.Result{}, err
	}

	var observedService corev1.Service
	serviceExists, err := r.fetch(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &observedService)
	if err != nil {
		return ctrl.Result{}, err
	}

	currentHash := ""
	if deploymentExists {
		currentHash = observedDeployment.Annotations[configHashAnnotation]
	}
	incomingHash, err := computeConfigHash(desired.ConfigMap.Data)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("computing config hash: %w", err)
	}

	if bot.Status.Phase == "" {
		log.Info("Updating bot status", "event", "UpdatingBotStatus", "bot", name)
		if err := r.updateStatus(ctx, bot, hub.BotPhasePending); err != nil {
			return ctrl.Result{}, err
		}
	}

	if !configMapExists || drift.ConfigMap(&observedConfigMap, desired.ConfigMap) {
		log.Info("Applying ConfigMap", "event", "ApplyingConfigMap", "bot", name)
		if err := apply(ctx, r.Client, desired.ConfigMap); err != nil {
			return ctrl.Result{}, fmt.Errorf("applying configmap: %w", err)
		}
	}

	if hubBot.Spec.PVC.Enabled {
		if !pvcExists || drift.PVC(&observedPVC, desired.PVC) {
			log.Info("Applying PVC", "event", "ApplyingPVC", "bot", name)
			if err := apply(ctx, r.Client, desired.PVC); err != nil {
				return ctrl.Result{}, fmt.Errorf("applying pvc: %w", err)
			}
		}
	} else if pvcExists {
		log.Info("Deleting PVC", "event", "DeletingPVC", "bot", name)
		if err := r.Delete(ctx, &observedPVC); err != nil && !apierrors.IsNotFound(err) {
			return ctrl.Result{}, fmt.Errorf("deleting pvc: %w", err)
		}
	}

	deployment := &observedDeployment
	if !deploymentExists || drift.Deployment(&observedDeployment, desired.Deployment) {
		log.Info("Applying Deployment", "event", "ApplyingDeployment", "bot", name)
		if err := apply(ctx, r.Client, desired.Deployment); err != nil {
			return ctrl.Result{}, fmt.Errorf("applying deployment: %w", err)
		}
		deployment = desired.Deployment
	}

	if currentHash != incomingHash {
		if err := r.patchConfigHash(ctx, name, namespace, incomingHash); err != nil {
			return ctrl.Result{}, fmt.Errorf("patching config hash: %w", err)
		}

		if currentHash != "" {
			log.Info("Rolling out deployment", "event", "RollingOutDeployment", "bot", name)
			if err := r.rollout(ctx, name, namespace); err != nil {
				return ctrl.Result{}, fmt.Errorf("rolling out deployment: %w", err)
			}
		}
	}

	phase := derivePhase(deployment.Status)
	if bot.Status.Phase != phase.String() {
		log.Info("Updating bot status", "event", "UpdatingBotStatus", "bot", name, "status", phase.String())
		if err := r.updateStatus(ctx, bot, phase); err != nil {
			return ctrl.Result{}, err
		}
	}

	if hubBot.Spec.API.Enabled {
		if !serviceExists || drift.Service(&observedService, desired.Service) {
			log.Info("Applying Service", "event", "ApplyingService", "bot", name)
			if err := apply(ctx, r.Client, desired.Service); err != nil {
				return ctrl.Result{}, fmt.Errorf("applying service: %w", err)
			}
		}
	} else if serviceExists {
		log.Info("Deleting Service", "event", "DeletingService", "bot", name)
		if err := r.Delete(ctx, &observedService); err != nil && !apierrors.IsNotFound(err) {
			return ctrl.Result{}, fmt.Errorf("deleting service: %w", err)
		}
	}

	return ctrl.Result{RequeueAfter: requeueInterval}, nil
}

// fetch gets obj, reporting whether it exists and passing through any
// non-NotFound error.
func (r *BotReconciler) fetch(ctx context.Context, key client.ObjectKey, obj client.Object) (bool, error) {
	if err := r.Get(ctx, key, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *BotReconciler) updateStatus(ctx context.Context, bot *v1alpha1.Bot, phase hub.BotPhase) error {
	now := metav1.Now()
	patch := client.RawPatch(
		client.Merge.Type(),
		[]byte(fmt.Sprintf(
			`{"status":{"phase":%q,"lastUpdated":%q}}`,
			phase.String(), now.UTC().Format(time.RFC3339),
		)),
	)
	if err := r.Status().Patch(ctx, bot, patch, client.FieldOwner(FieldManager)); err != nil {
		return fmt.Errorf("updating bot status: %w", err)
	}
	bot.Status.Phase = phase.String()
	bot.Status.LastUpdated = &now
	return nil
}

func (r *BotReconciler) patchConfigHash(ctx context.Context, name, namespace, hash string) error {
	dep := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
	}
	body, err := json.Marshal(map[string]interface{}{
		"metadata": map[string]interface{}{
			"annotations": map[string]string{configHashAnnotation: hash},
		},
	})
	if err != nil {
		return err
	}
	return r.Patch(ctx, dep, client.RawPatch(client.Merge.Type(), body), client.FieldOwner(FieldManager))
}

func (r *BotReconciler) rollout(ctx context.Context, name, namespace string) error {
	dep := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
	}
	body, err := json.Marshal(map[string]interface{}{
		"spec": map[string]interface{}{
			"template": map[string]interface{}{
				"metadata": map[string]interface{}{
					"annotations": map[string]string{
						restartedAtAnnotation: time.Now().UTC().Format(time.RFC3339),
					},
				},
			},
		},
	})
	if err != nil {
		return err
	}
	return r.Patch(ctx, dep, client.RawPatch(client.Merge.Type(), body), client.FieldOwner(FieldManager))
}

// apply server-side-applies obj, taking ownership of every field it sets.
func apply(ctx context.Context, c client.Client, obj client.Object) error {
	obj.SetManagedFields(nil)
	return c.Patch(ctx, obj, client.Apply, client.ForceOwnership, client.FieldOwner(FieldManager))
}

// SetupWithManager registers the reconciler with mgr, watching Bots and the
// objects it owns.
func (r *BotReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Bot{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&corev1.PersistentVolumeClaim{}).
		Complete(r)
}
