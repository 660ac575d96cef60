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
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2/textlogger"
	ctrl "sigs.k8s.io/controller-runtime"

	appconfig "github.com/freqtrade-operator/operator/internal/config"
	"github.com/freqtrade-operator/operator/internal/webhook"
)

var webhookCmd = &cobra.Command{
	Use:     "webhook",
	GroupID: groupRun,
	Short:   "Run the Bot admission webhook HTTPS server until signalled",
	RunE:    runWebhook,
}

func init() {
	RootCmd.AddCommand(webhookCmd)
}

func runWebhook(cmd *cobra.Command, args []string) error {
	ctrl.SetLogger(textlogger.NewLogger(textlogger.NewConfig()))
	setupLog := ctrl.Log.WithName("webhook")

	appCfg, err := appconfig.Load(configFile)
	if err != nil {
		return err
	}

	srv := webhook.NewServer(setupLog)
	addr := fmt.Sprintf("%s:%d", appCfg.Webhook.Host, appCfg.Webhook.Port)

	setupLog.Info("starting webhook server", "address", addr, "version", Version)

	ctx := ctrl.SetupSignalHandler()
	return webhook.ListenAndServeTLS(ctx, addr, appCfg.Webhook.TLS.CertFile, appCfg.Webhook.TLS.KeyFile, srv.Handler(Version), setupLog)
}
