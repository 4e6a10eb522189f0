package philint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}
	rootCmd.AddCommand(ci)

	var provider string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		RunE: func(_ *cobra.Command, _ []string) error {
			var path string
			var content string
			switch provider {
			case "gitlab":
				path = ".gitlab-ci.yml"
				content = `stages: [lint]
phi-lint:
  stage: lint
  image: golang:1.25
  script:
    - go build -o bin/philint .
    - ./bin/philint scan --json | tee phi-violations.json
  artifacts:
    when: always
    paths:
      - phi-violations.json
`
			case "bitbucket":
				path = "bitbucket-pipelines.yml"
				content = `pipelines:
  default:
    - step:
        name: PHI Lint
        image: golang:1.25
        caches:
          - go
        script:
          - go build -o bin/philint .
          - ./bin/philint scan --json | tee phi-violations.json
        artifacts:
          - phi-violations.json
`
			case "azure":
				path = "azure-pipelines.yml"
				content = `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go build -o bin/philint .
    ./bin/philint scan --json | tee phi-violations.json
  displayName: 'PHI Lint'
- publish: phi-violations.json
  artifact: phi-violations
  condition: succeededOrFailed()
`
			default:
				return fmt.Errorf("unknown --provider. Supported: gitlab, bitbucket, azure")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Println("Wrote", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: gitlab | bitbucket | azure")
	if err := initCmd.MarkFlagRequired("provider"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not mark --provider as required:", err)
	}
	ci.AddCommand(initCmd)
}
