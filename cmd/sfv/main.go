// sfv - structured field value pretty-printer
//
// Usage:
//
//	sfv [--item|--list|--dictionary]
//
// Reads one field value from stdin, strips a trailing newline, parses
// it as the selected field kind (default item), and prints the parse
// tree followed by the canonical serialization.
//
// Exits 0 on success, 1 on parse error, 2 on usage error.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/httpwire/sfv/sfv"
)

func main() {
	kind := "item"
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--item":
			kind = "item"
		case "--list":
			kind = "list"
		case "--dictionary":
			kind = "dictionary"
		case "-h", "--help":
			printUsage(os.Stdout)
			return
		default:
			fmt.Fprintf(os.Stderr, "sfv: unknown argument: %s\n", arg)
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sfv: read stdin: %v\n", err)
		os.Exit(2)
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	var dump string
	var canonical []byte
	switch kind {
	case "item":
		item, perr := sfv.ParseItem(data)
		if perr != nil {
			fatalParse(perr)
		}
		dump = describeItem(item, "")
		canonical, err = sfv.WriteItem(item)
	case "list":
		list, perr := sfv.ParseList(data)
		if perr != nil {
			fatalParse(perr)
		}
		dump = describeList(list)
		canonical, err = sfv.WriteList(list)
	case "dictionary":
		dict, perr := sfv.ParseDictionary(data)
		if perr != nil {
			fatalParse(perr)
		}
		dump = describeDictionary(dict)
		canonical, err = sfv.WriteDictionary(dict)
	}
	if err != nil {
		fatalParse(err)
	}

	fmt.Print(dump)
	fmt.Printf("canonical: %s\n", canonical)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: sfv [--item|--list|--dictionary]  (field value on stdin)")
}

func fatalParse(err error) {
	fmt.Fprintf(os.Stderr, "sfv: %v\n", err)
	os.Exit(1)
}

func describeList(list sfv.List) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "list (%d members)\n", len(list))
	for _, m := range list {
		sb.WriteString(describeMember(m, "  "))
	}
	return sb.String()
}

func describeDictionary(dict *sfv.Dictionary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dictionary (%d entries)\n", dict.Len())
	for _, e := range dict.Entries() {
		fmt.Fprintf(&sb, "  %s =\n", e.Key)
		sb.WriteString(describeMember(e.Value, "    "))
	}
	return sb.String()
}

func describeMember(m sfv.Member, indent string) string {
	if il, err := m.AsInnerList(); err == nil {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%sinner list (%d items)\n", indent, len(il.Items))
		for _, it := range il.Items {
			sb.WriteString(describeItem(it, indent+"  "))
		}
		sb.WriteString(describeParams(il.Params, indent))
		return sb.String()
	}
	item, _ := m.AsItem()
	return describeItem(item, indent)
}

func describeItem(it sfv.Item, indent string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", indent, describeBare(it.Bare))
	sb.WriteString(describeParams(it.Params, indent))
	return sb.String()
}

func describeParams(params *sfv.Parameters, indent string) string {
	var sb strings.Builder
	for _, e := range params.Entries() {
		fmt.Fprintf(&sb, "%s;%s = %s\n", indent, e.Key, describeBare(e.Value))
	}
	return sb.String()
}

func describeBare(b sfv.BareItem) string {
	switch b.Type() {
	case sfv.TypeBoolean:
		v, _ := b.AsBool()
		return fmt.Sprintf("boolean %t", v)
	case sfv.TypeInteger:
		v, _ := b.AsInt()
		return fmt.Sprintf("integer %d", v)
	case sfv.TypeDecimal:
		v, _ := b.AsDecimal()
		return fmt.Sprintf("decimal %s", v)
	case sfv.TypeString:
		v, _ := b.AsString()
		return fmt.Sprintf("string %q", v)
	case sfv.TypeToken:
		v, _ := b.AsToken()
		return fmt.Sprintf("token %s", v)
	case sfv.TypeByteSequence:
		v, _ := b.AsByteSequence()
		return fmt.Sprintf("byte sequence :%s:", v)
	case sfv.TypeDate:
		v, _ := b.AsDate()
		return fmt.Sprintf("date @%d", v)
	case sfv.TypeDisplayString:
		v, _ := b.AsDisplayString()
		return fmt.Sprintf("display string %q", v)
	default:
		return "unknown"
	}
}
