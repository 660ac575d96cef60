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
	"os"

	"github.com/spf13/cobra"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	v1alpha1 "github.com/freqtrade-operator/operator/api/v1alpha1"
)

var crdsCmd = &cobra.Command{
	Use:     "crds",
	GroupID: groupOther,
	Short:   "Emit the bots.freqtrade.io CustomResourceDefinition YAML to standard output",
	RunE:    runCRDs,
}

func init() {
	RootCmd.AddCommand(crdsCmd)
}

// preserveUnknownFields is a schema for fields whose structure the operator
// deliberately does not constrain, matching the +kubebuilder:pruning:PreserveUnknownFields
// marker on BotSpec.Config and the open-ended BotDeploymentSpec overrides.
func preserveUnknownFields() apiextensionsv1.JSONSchemaProps {
	preserve := true
	return apiextensionsv1.JSONSchemaProps{
		Type:                   "object",
		XPreserveUnknownFields: &preserve,
	}
}

func stringProp() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{Type: "string"}
}

func boolProp() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{Type: "boolean"}
}

func int32Prop() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{Type: "integer", Format: "int32"}
}

func secretItemSchema() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:                   "object",
		XPreserveUnknownFields: boolPtr(true),
	}
}

func boolPtr(b bool) *bool { return &b }

func secretsGroupSchema(fields ...string) apiextensionsv1.JSONSchemaProps {
	props := map[string]apiextensionsv1.JSONSchemaProps{}
	for _, f := range fields {
		props[f] = secretItemSchema()
	}
	return apiextensionsv1.JSONSchemaProps{Type: "object", Properties: props}
}

func sourceSpecSchema(requireName bool) apiextensionsv1.JSONSchemaProps {
	s := apiextensionsv1.JSONSchemaProps{
		Type: "object",
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"name":          stringProp(),
			"source":        stringProp(),
			"configMapName": stringProp(),
		},
	}
	if requireName {
		s.Required = []string{"name"}
	}
	return s
}

// botCRD builds the bots.freqtrade.io CustomResourceDefinition. It is
// hand-written (no controller-gen run) to mirror the kubebuilder markers on
// api/v1alpha1/bot_types.go: open schemas for spec.config and the advanced
// deployment overrides, a status subresource, and the three print columns.
func botCRD() *apiextensionsv1.CustomResourceDefinition {
	specProps := map[string]apiextensionsv1.JSONSchemaProps{
		"exchange": stringProp(),
		"database": stringProp(),
		"config":   preserveUnknownFields(),
		"strategy": sourceSpecSchema(true),
		"model":    sourceSpecSchema(false),
		"image": {
			Type: "object",
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"repository":  stringProp(),
				"tag":         stringProp(),
				"pullPolicy":  stringProp(),
				"pullSecrets": {Type: "array", Items: &apiextensionsv1.JSONSchemaPropsOrArray{Schema: &apiextensionsv1.JSONSchemaProps{Type: "string"}}},
			},
		},
		"secrets": {
			Type: "object",
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"exchange": secretsGroupSchema("key", "secret", "password", "uid"),
				"api":      secretsGroupSchema("username", "password", "wsToken", "jwtSecretKey"),
				"telegram": {
					Type: "object",
					Properties: map[string]apiextensionsv1.JSONSchemaProps{
						"token":  secretItemSchema(),
						"chatId": stringProp(),
					},
				},
			},
		},
		"api": {
			Type:    "object",
			Default: &apiextensionsv1.JSON{Raw: []byte(`{}`)},
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"enabled": {Type: "boolean", Default: &apiextensionsv1.JSON{Raw: []byte(`true`)}},
				"host":    stringProp(),
				"port":    int32Prop(),
			},
		},
		"service": preserveUnknownFields(),
		"pvc": {
			Type:                   "object",
			Default:                &apiextensionsv1.JSON{Raw: []byte(`{}`)},
			XPreserveUnknownFields: boolPtr(true),
			Properties: map[string]apiextensionsv1.JSONSchemaProps{
				"enabled": {Type: "boolean", Default: &apiextensionsv1.JSON{Raw: []byte(`true`)}},
			},
		},
		"deployment": preserveUnknownFields(),
	}

	schema := apiextensionsv1.JSONSchemaProps{
		Type: "object",
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"spec": {
				Type:       "object",
				Required:   []string{"exchange", "strategy", "secrets"},
				Properties: specProps,
			},
			"status": {
				Type: "object",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"phase":       stringProp(),
					"lastUpdated": {Type: "string", Format: "date-time"},
				},
			},
		},
	}

	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apiextensions.k8s.io/v1",
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: "bots." + v1alpha1.GroupVersion.Group,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: v1alpha1.GroupVersion.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   "bots",
				Singular: "bot",
				Kind:     "Bot",
				ListKind: "BotList",
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    v1alpha1.GroupVersion.Version,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: &schema,
					},
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
					AdditionalPrinterColumns: []apiextensionsv1.CustomResourceColumnDefinition{
						{Name: "Phase", Type: "string", JSONPath: ".status.phase"},
						{Name: "Exchange", Type: "string", JSONPath: ".spec.exchange"},
						{Name: "Last Updated", Type: "date", JSONPath: ".status.lastUpdated"},
					},
				},
			},
		},
	}
}

func runCRDs(cmd *cobra.Command, args []string) error {
	out, err := yaml.Marshal(botCRD())
	if err != nil {
		return fmt.Errorf("marshalling Bot CRD: %w", err)
	}
	fmt.Fprintln(os.Stdout, "---")
	_, err = os.Stdout.Write(out)
	return err
}
