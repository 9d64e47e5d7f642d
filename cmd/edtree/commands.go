package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/edtree/internal/doctree"
	"github.com/dgallion1/edtree/internal/domutil"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// cli carries the streams and logger shared by every subcommand.
type cli struct {
	in      io.Reader
	out     io.Writer
	log     *slog.Logger
	verbose bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}

	root := &cobra.Command{
		Use:          "edtree",
		Short:        "Inspect and edit the editing region of an editor document",
		Long:         `edtree loads an HTML editor document (a file, or - for stdin), locates the element carrying the "` + domutil.RegionClass + `" class and runs tree queries or class-list edits against it.`,
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if c.verbose {
			level = slog.LevelDebug
		}
		c.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		c.outlineCmd(),
		c.ancestorCmd(),
		c.nodesCmd(),
		c.classCmd(),
		c.textCmd(),
		c.removeCmd(),
	)
	return root
}

func (c *cli) outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline FILE",
		Short: "List format elements and table cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			return c.printJSON(map[string]any{
				"format": doc.Outline(),
				"cells":  doc.Cells(),
			})
		},
	}
}

func (c *cli) ancestorCmd() *cobra.Command {
	var from, query string
	cmd := &cobra.Command{
		Use:   "ancestor FILE",
		Short: "Find the closest ancestor matching a query (tag, .class, #id or :name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			start, err := c.selectNode(doc, from)
			if err != nil {
				return err
			}

			resp := map[string]any{"match": nil, "format": nil}
			if m := domutil.FindAncestor(start, query); m != nil {
				resp["match"] = doc.Describe(m)
			}
			format, err := domutil.NearestFormatElement(start)
			if err != nil {
				c.log.Debug("no format element", "from", from, "error", err)
			} else if format != nil {
				resp["format"] = doc.Describe(format)
			}
			return c.printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "query selecting the start node (default: the region)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "ancestor query")
	cmd.MarkFlagRequired("query")
	return cmd
}

func (c *cli) nodesCmd() *cobra.Command {
	var from string
	var textOnly bool
	cmd := &cobra.Command{
		Use:   "nodes FILE",
		Short: "List the nodes under a start node, itself included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			start, err := c.selectNode(doc, from)
			if err != nil {
				return err
			}
			for _, n := range doc.Nodes(start, textOnly) {
				if n.Type == html.TextNode {
					fmt.Fprintf(c.out, "#text %q\n", n.Data)
					continue
				}
				fmt.Fprintf(c.out, "<%s>\n", n.Data)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "query selecting the start node (default: the region)")
	cmd.Flags().BoolVar(&textOnly, "text", false, "only list text nodes")
	return cmd
}

func (c *cli) classCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:       "class FILE add|remove|toggle|has NAME",
		Short:     "Edit or test the class list of an element",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"add", "remove", "toggle", "has"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			n, err := c.selectNode(doc, target)
			if err != nil {
				return err
			}

			op, name := args[1], args[2]
			switch op {
			case "add":
				domutil.AddClass(n, name)
			case "remove":
				domutil.RemoveClass(n, name)
			case "toggle":
				domutil.ToggleClass(n, name)
			case "has":
				fmt.Fprintln(c.out, domutil.HasClass(n, name))
				return nil
			default:
				return fmt.Errorf("unknown class operation %q", op)
			}
			c.log.Debug("class updated", "op", op, "class", domutil.Attr(n, "class"))
			return c.printRegion(doc)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "query selecting the element (default: the region)")
	return cmd
}

func (c *cli) textCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "text FILE TEXT",
		Short: "Replace the contents of an element with text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			n, err := c.selectNode(doc, target)
			if err != nil {
				return err
			}
			domutil.ChangeText(n, args[1])
			return c.printRegion(doc)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "query selecting the element")
	cmd.MarkFlagRequired("target")
	return cmd
}

func (c *cli) removeCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "remove FILE",
		Short: "Remove an element from the region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.load(args[0])
			if err != nil {
				return err
			}
			n, err := c.selectNode(doc, target)
			if err != nil {
				return err
			}
			domutil.RemoveItem(n)
			return c.printRegion(doc)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "query selecting the element")
	cmd.MarkFlagRequired("target")
	return cmd
}

// load parses path, or stdin when path is "-".
func (c *cli) load(path string) (*doctree.Document, error) {
	r := c.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		defer f.Close()
		r = f
	}
	doc, err := doctree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	c.log.Debug("document loaded", "path", path, "format_elements", len(doc.Formats()))
	return doc, nil
}

func (c *cli) selectNode(doc *doctree.Document, query string) (*html.Node, error) {
	if query == "" {
		return doc.Region, nil
	}
	n := doc.Select(query)
	if n == nil {
		return nil, fmt.Errorf("no element matches %q", query)
	}
	return n, nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printRegion(doc *doctree.Document) error {
	out, err := doc.RegionHTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, out)
	return err
}
