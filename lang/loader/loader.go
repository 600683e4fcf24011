// Package loader decodes an IPPcode22 XML program document into the
// ordered instruction sequence the machine package executes.
package loader

import (
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ippcode22/lang/ipperr"
	"ippcode22/lang/machine"
	"ippcode22/lang/opcode"
)

// xmlProgram, xmlInstruction and xmlArg mirror the document shape closely
// enough for encoding/xml to decode into, while still letting this package
// do its own attribute validation (encoding/xml silently ignores attributes
// it doesn't recognize, which would hide a missing 'language' attribute).
type xmlProgram struct {
	// XMLName is deliberately untagged (no xml:"program" match expression):
	// a tagged name would make encoding/xml reject a mismatched root before
	// this package's own check runs, reporting it as XMLFormat (malformed
	// XML) instead of the XMLStruct (32) the format calls for.
	XMLName  xml.Name
	Attrs    []xml.Attr      `xml:",any,attr"`
	Children []xmlAnyElement `xml:",any"`
}

type xmlAnyElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr      `xml:",any,attr"`
	Inner   []xmlAnyElement `xml:",any"`
	Text    string          `xml:",chardata"`
}

var argTagRE = regexp.MustCompile(`^arg[123]$`)

var validArgTypes = map[string]bool{
	"int": true, "bool": true, "string": true,
	"nil": true, "label": true, "type": true, "var": true,
}

// Load parses r as an IPPcode22 XML program and returns its instructions
// sorted by Order, ready for machine.Machine.Load. XML syntax errors are
// reported as ipperr.XMLFormat (31); every structural or semantic problem
// in an otherwise well-formed document is ipperr.XMLStruct (32).
func Load(r io.Reader) ([]machine.Instruction, error) {
	var doc xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ipperr.New(ipperr.XMLFormat, "XML not well-formed: %v", err)
	}

	if doc.XMLName.Local != "program" {
		return nil, ipperr.New(ipperr.XMLStruct, "root element must be 'program'")
	}
	lang, ok := attr(doc.Attrs, "language")
	if !ok {
		return nil, ipperr.New(ipperr.XMLStruct, "missing 'language' attribute")
	}
	if lang != "IPPcode22" {
		return nil, ipperr.New(ipperr.XMLStruct, "'language' attribute must be IPPcode22")
	}

	instrs := make([]machine.Instruction, 0, len(doc.Children))
	for _, node := range doc.Children {
		ins, err := decodeInstruction(node)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, ins)
	}

	sort.SliceStable(instrs, func(i, j int) bool { return instrs[i].Order < instrs[j].Order })
	return instrs, nil
}

func decodeInstruction(node xmlAnyElement) (machine.Instruction, error) {
	if node.XMLName.Local != "instruction" {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "'program' element must contain only 'instruction' elements")
	}
	opcodeName, ok := attr(node.Attrs, "opcode")
	if !ok {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "missing 'opcode' attribute")
	}
	orderStr, ok := attr(node.Attrs, "order")
	if !ok {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "missing 'order' attribute")
	}

	order, err := strconv.Atoi(orderStr)
	if err != nil {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "'order' attribute is not a number")
	}
	if order < 0 {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "'order' attribute is negative")
	}

	op, ok := opcode.Lookup(strings.ToUpper(opcodeName))
	if !ok {
		return machine.Instruction{}, ipperr.New(ipperr.XMLStruct, "unknown opcode %q", opcodeName)
	}

	ins := machine.Instruction{Op: op, Order: order}
	for _, argNode := range node.Inner {
		arg, err := decodeArg(argNode)
		if err != nil {
			return machine.Instruction{}, err
		}
		switch argNode.XMLName.Local {
		case "arg1":
			ins.Arg1 = arg
		case "arg2":
			ins.Arg2 = arg
		case "arg3":
			ins.Arg3 = arg
		}
	}
	return ins, nil
}

func decodeArg(node xmlAnyElement) (*machine.Argument, error) {
	if !argTagRE.MatchString(node.XMLName.Local) {
		return nil, ipperr.New(ipperr.XMLStruct, "'instruction' element must contain only arg1/arg2/arg3 elements")
	}
	typ, ok := attr(node.Attrs, "type")
	if !ok {
		return nil, ipperr.New(ipperr.XMLStruct, "missing 'type' attribute")
	}
	if !validArgTypes[typ] {
		return nil, ipperr.New(ipperr.XMLStruct, "invalid 'type' attribute value %q", typ)
	}

	text := node.Text

	switch typ {
	case "var":
		frame, name, ok := strings.Cut(text, "@")
		if !ok {
			return nil, ipperr.New(ipperr.XMLStruct, "malformed variable %q", text)
		}
		sel, ok := frameSelector(frame)
		if !ok {
			return nil, ipperr.New(ipperr.XMLStruct, "unknown frame %q", frame)
		}
		return machine.NewVarArg(sel, name), nil

	case "int":
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, ipperr.New(ipperr.XMLStruct, "invalid int literal %q", text)
		}
		return machine.NewConstArg(machine.Int(n)), nil

	case "bool":
		return machine.NewConstArg(machine.Bool(strings.EqualFold(text, "true"))), nil

	case "string":
		decoded, err := decodeStringLiteral(text)
		if err != nil {
			return nil, err
		}
		return machine.NewConstArg(machine.NewString(decoded)), nil

	case "nil":
		return machine.NewConstArg(machine.Nil), nil

	case "label":
		return machine.NewLabelArg(text), nil

	case "type":
		if text != "int" && text != "bool" && text != "string" {
			return nil, ipperr.New(ipperr.XMLStruct, "invalid type argument %q", text)
		}
		return machine.NewTypeArg(text), nil

	default:
		panic("loader: unreachable arg type " + typ) // validArgTypes already checked
	}
}

var stringEscapeRE = regexp.MustCompile(`\\([0-9]{3})`)

// decodeStringLiteral expands \ddd decimal-code-point escapes, the only
// escape form the format defines.
func decodeStringLiteral(s string) (string, error) {
	var firstErr error
	out := stringEscapeRE.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.Atoi(stringEscapeRE.FindStringSubmatch(m)[1])
		if err != nil && firstErr == nil {
			firstErr = ipperr.New(ipperr.XMLStruct, "invalid string escape %q", m)
		}
		return string(rune(code))
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func frameSelector(name string) (machine.FrameSel, bool) {
	switch name {
	case "GF":
		return machine.GF, true
	case "TF":
		return machine.TF, true
	case "LF":
		return machine.LF, true
	default:
		return 0, false
	}
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
