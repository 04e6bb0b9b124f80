package ir

import (
	"fmt"
	"strings"
)

func indent(s string) string {
	var lines []string
	for line := range strings.Lines(s) {
		lines = append(lines, "\t"+line)
	}
	return strings.Join(lines, "")
}

// String representation of the value.
func (a *Argument) String() string {
	return "%" + a.name
}

// String representation of the value.
func (r *Result) String() string {
	return fmt.Sprintf("%%%d", r.id)
}

// String representation of the op.
func (op *ConstantOp) String() string {
	return fmt.Sprintf("%s = constant %s", op.res.String(), op.Val.String())
}

// String representation of the op.
func (op *DimOp) String() string {
	return fmt.Sprintf("%s = dim %s, %d : index", op.res.String(), op.Arr.String(), op.Index)
}

// String representation of the op.
func (op *ExtractOp) String() string {
	return fmt.Sprintf("%s = extract %s[%d] : index", op.res.String(), op.Arr.String(), op.Index)
}

// String representation of the function.
func (f *Func) String() string {
	params := make([]string, len(f.args))
	for i, arg := range f.args {
		params[i] = fmt.Sprintf("%s: %s", arg.String(), arg.Type().String())
	}
	body := strings.Builder{}
	for _, op := range f.ops {
		body.WriteString(op.String())
		body.WriteString("\n")
	}
	return fmt.Sprintf("func @%s(%s) {\n%s}", f.name, strings.Join(params, ", "), indent(body.String()))
}

// String representation of the module.
func (m *Module) String() string {
	body := strings.Builder{}
	for _, fn := range m.Funcs() {
		body.WriteString(fn.String())
		body.WriteString("\n")
	}
	return fmt.Sprintf("module @%s {\n%s}", m.name, indent(body.String()))
}
