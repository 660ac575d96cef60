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

import "github.com/freqtrade-operator/operator/internal/hub"

// defaultCommand is the bot's built-in trade command, extended with
// --freqaimodel when a model is configured.
func defaultCommand(b *hub.Bot) []string {
	cmd := []string{"freqtrade", "trade", "--config", "/etc/freqtrade/config.json"}
	if b.Spec.Model != nil {
		cmd = append(cmd, "--freqaimodel", b.Spec.Model.Name)
	}
	return cmd
}

// resolveCommand expands the literal token "$CMD" in a user-supplied
// command into the operator's default command, passing every other token
// through unchanged. An empty user command falls back to the default
// command entirely.
func resolveCommand(userCommand []string, b *hub.Bot) []string {
	def := defaultCommand(b)
	if len(userCommand) == 0 {
		return def
	}

	out := make([]string, 0, len(userCommand)+len(def))
	for _, part := range userCommand {
		if part == "$CMD" {
			out = append(out, def...)
			continue
		}
		out = append(out, part)
	}
	return out
}
