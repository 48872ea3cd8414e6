package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-uni"
	"github.com/KimNorgaard/go-uni/ast"
)

type dumpAttribute struct {
	Name string `yaml:"name"`
	// Value is nil for a flag, a string for a scalar and a []string for a list.
	Value any `yaml:"value"`
}

type dumpElement struct {
	Attributes []dumpAttribute `yaml:"attributes"`
	Children   []dumpElement   `yaml:"children,omitempty"`
}

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the element tree of a UNI document",
		Long: `Parse a UNI document and print its element tree as YAML or JSON.

Each element lists its attributes in order. A flag attribute has a null
value, a scalar a string and a list a sequence of strings. If no file is
provided, the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []yaml.EncodeOption
			switch dumpFormat {
			case "yaml":
			case "json":
				opts = append(opts, yaml.JSON())
			default:
				return fmt.Errorf("unsupported format %q, expected yaml or json", dumpFormat)
			}

			src, name, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			doc, err := uni.Parse(src)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			out, err := yaml.MarshalWithOptions(dumpElements(doc.Elements), opts...)
			if err != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, err)
			}
			log.Debugf("dumped %s as %s", name, dumpFormat)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "output format: yaml or json")

	return cmd
}

func dumpElements(elements []*ast.Element) []dumpElement {
	out := make([]dumpElement, len(elements))
	for i, e := range elements {
		attrs := make([]dumpAttribute, len(e.Attributes))
		for j, a := range e.Attributes {
			attrs[j] = dumpAttribute{Name: a.Name, Value: dumpValue(a.Value)}
		}
		out[i] = dumpElement{Attributes: attrs}
		if len(e.Children) > 0 {
			out[i].Children = dumpElements(e.Children)
		}
	}
	return out
}

func dumpValue(v ast.Value) any {
	switch v.Kind() {
	case ast.ScalarValue:
		return v.Scalar()
	case ast.ListValue:
		return v.List()
	}
	return nil
}
