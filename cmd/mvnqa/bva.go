package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/service"
)

var (
	bvaFormat      string
	bvaOutput      string
	bvaParamName   string
	bvaParamType   string
	bvaFunction    string
	bvaConstraints string
	bvaSource      string
)

func bvaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bva",
		Short: "Generate boundary value test inputs",
		Long: `Generate boundary value test inputs for a Java method parameter.

Describe the parameter explicitly with --param/--type/--function, or point
--source at a Java file to generate values for every declared parameter.

Examples:
  mvnqa bva --param count --type int --function setCount
  mvnqa bva --param input --type String --function parseToInt
  mvnqa bva --param count --type int --function setCount --constraints "max 10 items"
  mvnqa bva --source src/main/java/com/example/Parser.java --format json`,
		RunE: runBva,
	}

	cmd.Flags().StringVarP(&bvaFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&bvaOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&bvaParamName, "param", "p", "", "Parameter name")
	cmd.Flags().StringVarP(&bvaParamType, "type", "t", "", "Declared Java parameter type")
	cmd.Flags().StringVar(&bvaFunction, "function", "", "Enclosing method name")
	cmd.Flags().StringVar(&bvaConstraints, "constraints", "", "Free-text numeric constraints, e.g. \"max 10 items\"")
	cmd.Flags().StringVarP(&bvaSource, "source", "s", "", "Java source file to mine parameters from")

	return cmd
}

func runBva(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(bvaFormat)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(bvaOutput)
	if err != nil {
		return err
	}
	defer closeOutput()

	uc := app.NewBvaUseCase(service.NewBoundaryValueService())
	formatter := service.NewOutputFormatter()

	if bvaSource != "" {
		responses, err := uc.ExecuteFromSource(bvaSource, bvaFunction, bvaConstraints)
		if err != nil {
			return err
		}
		for _, resp := range responses {
			if err := formatter.WriteBva(resp, format, writer); err != nil {
				return err
			}
		}
		return nil
	}

	if bvaParamName == "" || bvaParamType == "" {
		return fmt.Errorf("either --source or both --param and --type must be specified")
	}

	resp, err := uc.Execute(domain.BvaRequest{
		ParamName:    bvaParamName,
		ParamType:    bvaParamType,
		FunctionName: bvaFunction,
		Constraints:  bvaConstraints,
	})
	if err != nil {
		return err
	}
	return formatter.WriteBva(resp, format, writer)
}
