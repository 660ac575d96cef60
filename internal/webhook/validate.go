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

// Package webhook serves the admission webhook that validates Bot specs
// before they're persisted, rejecting configuration and environment
// variable names the operator manages itself.
package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// reservedConfigKeys are dotted paths into spec.config that the bot's own
// control plane reserves for itself; a user spec.config must not set them.
var reservedConfigKeys = []string{
	"config.add_config_files", "config.recursive_strategy_search", "config.strategy_path",
	"config.strategy", "config.bot_name", "config.db_url",
	"config.api_server.enabled", "config.api_server.listen_ip_address", "config.api_server.listen_port",
	"config.api_server.jwt_secret_key", "config.api_server.username", "config.api_server.password",
	"config.api_server.ws_token", "config.telegram.token", "config.telegram.chat_id",
	"config.exchange.name", "config.exchange.key", "config.exchange.secret", "config.exchange.password",
	"config.freqai.enabled",
}

// reservedEnvVars are top-level spec fields named after environment
// variables the operator injects itself. They're checked with the same
// dotted-path walk as reservedConfigKeys even though none of them contain a
// dot, reproducing a quirk of the admission rules this was distilled from
// rather than special-casing it away.
var reservedEnvVars = []string{
	"FREQTRADE__STRATEGY", "FREQTRADE__STRATEGY_PATH", "FREQTRADE__DB_URL", "FREQTRADE__BOT_NAME",
	"FREQTRADE__API_SERVER__ENABLED", "FREQTRADE__API_SERVER__LISTEN_IP_ADDRESS", "FREQTRADE__API_SERVER__LISTEN_PORT",
	"FREQTRADE__API_SERVER__USERNAME", "FREQTRADE__API_SERVER__PASSWORD", "FREQTRADE__API_SERVER__JWT_SECRET_KEY",
	"FREQTRADE__API_SERVER__WS_TOKEN", "FREQTRADE__EXCHANGE__NAME", "FREQTRADE__EXCHANGE__KEY",
	"FREQTRADE__EXCHANGE__SECRET", "FREQTRADE__EXCHANGE__PASSWORD", "FREQTRADE__EXCHANGE__UID",
	"FREQTRADE__TELEGRAM__TOKEN", "FREQTRADE__TELEGRAM__CHAT_ID",
}

// checkKeyExists walks a dotted path ("config.api_server.enabled") through
// nested JSON objects, returning true only if every segment resolves to a
// present field.
func checkKeyExists(payload map[string]interface{}, key string) bool {
	parts := strings.Split(key, ".")

	var cur interface{} = payload
	for _, part := range parts {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return false
		}
		v, present := m[part]
		if !present {
			return false
		}
		cur = v
	}
	return true
}

// validateSpec checks a Bot's spec (already decoded to a plain JSON object)
// against the reserved key/env var lists, returning a non-empty deny reason
// on the first violation found.
func validateSpec(spec map[string]interface{}) (allowed bool, reason string) {
	for _, key := range reservedConfigKeys {
		if checkKeyExists(spec, key) {
			return false, fmt.Sprintf("config key `%s` is reserved", key)
		}
	}
	for _, key := range reservedEnvVars {
		if checkKeyExists(spec, key) {
			return false, fmt.Sprintf("env var `%s` is reserved", key)
		}
	}
	return true, ""
}

// ValidateBotObject decodes a raw Bot object (kind/apiVersion plus spec)
// and validates it, routing only v1alpha1 objects to validateSpec; any
// other kind or version is rejected outright.
func ValidateBotObject(raw []byte) (allowed bool, reason string) {
	var obj struct {
		Kind       string                 `json:"kind"`
		APIVersion string                 `json:"apiVersion"`
		Spec       map[string]interface{} `json:"spec"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false, fmt.Sprintf("decoding object: %s", err)
	}

	if obj.Kind != "Bot" {
		return false, fmt.Sprintf("unexpected kind %q", obj.Kind)
	}

	version := obj.APIVersion
	if idx := strings.LastIndex(version, "/"); idx >= 0 {
		version = version[idx+1:]
	}

	switch version {
	case "v1alpha1":
		return validateSpec(obj.Spec)
	default:
		return false, fmt.Sprintf("unexpected version %q", version)
	}
}
