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

package cmd

import (
	"github.com/spf13/cobra"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/klog/v2/textlogger"
	ctrl "sigs.k8s.io/controller-runtime"
	ctrlconfig "sigs.k8s.io/controller-runtime/pkg/config"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	v1alpha1 "github.com/freqtrade-operator/operator/api/v1alpha1"
	appconfig "github.com/freqtrade-operator/operator/internal/config"
	botcontroller "github.com/freqtrade-operator/operator/internal/controller"
)

var (
	enableLeaderElection bool
	leaderElectionID     string
	managerConcurrency   int
	healthAddr           string
	metricsAddr          string
)

var controllerCmd = &cobra.Command{
	Use:     "controller",
	GroupID: groupRun,
	Short:   "Run the Bot reconciliation controller until signalled",
	RunE:    runController,
}

func init() {
	controllerCmd.Flags().BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for the controller manager. Ensures only one active instance reconciles at a time.")
	controllerCmd.Flags().StringVar(&leaderElectionID, "leader-elect-id", "bots-operator-leader-election",
		"Name of the leader election resource.")
	controllerCmd.Flags().IntVar(&managerConcurrency, "concurrency", 5,
		"Number of Bots reconciled concurrently.")
	controllerCmd.Flags().StringVar(&healthAddr, "health-addr", ":9440",
		"Address the health/readiness endpoint binds to.")
	controllerCmd.Flags().StringVar(&metricsAddr, "metrics-bind-address", ":8080",
		"Address the metrics endpoint binds to. Set to \"0\" to disable.")

	RootCmd.AddCommand(controllerCmd)
}

func runController(cmd *cobra.Command, args []string) error {
	ctrl.SetLogger(textlogger.NewLogger(textlogger.NewConfig()))
	setupLog := ctrl.Log.WithName("setup")

	appCfg, err := appconfig.Load(configFile)
	if err != nil {
		return err
	}

	scheme := clientgoscheme.Scheme
	utilruntime.Must(v1alpha1.AddToScheme(scheme))

	restConfig := ctrl.GetConfigOrDie()

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme:                 scheme,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       leaderElectionID,
		HealthProbeBindAddress: healthAddr,
		Metrics:                metricsOptions(),
		Controller: ctrlconfig.Controller{
			MaxConcurrentReconciles: managerConcurrency,
		},
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		return err
	}

	if err := mgr.AddHealthzCheck("ping", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		return err
	}
	if err := mgr.AddReadyzCheck("ping", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		return err
	}

	reconciler := &botcontroller.BotReconciler{
		Client: mgr.GetClient(),
		Config: appCfg,
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Bot")
		return err
	}

	ctx := ctrl.SetupSignalHandler()

	setupLog.Info("starting manager", "version", Version)
	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "problem running manager")
		return err
	}
	return nil
}

func metricsOptions() metricsserver.Options {
	if metricsAddr == "0" {
		return metricsserver.Options{BindAddress: "0"}
	}
	return metricsserver.Options{BindAddress: metricsAddr}
}
