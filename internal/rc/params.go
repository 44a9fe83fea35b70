package rc

import (
	"strconv"
	"strings"
)

const (
	paramLabel      = "label"
	paramShortLabel = "shortlabel"
)

// Param is one RC setting of a peer module.
type Param struct {
	Module string `json:"module"`
	Param  string `json:"param"`
	Value  string `json:"value"`
}

// Flatten converts the showjson tree into a flat parameter list.
//
// Modules and parameters keep the order they were received in. ODR-DabMux
// only accepts label and shortlabel together in a single set command, so when
// a module carries both as strings they are merged into one "label" entry
// holding "<label>,<shortlabel>" and neither is emitted on its own.
func Flatten(root Value) ([]Param, error) {
	if root.Kind != KindObject {
		return nil, malformed("root", nil)
	}

	params := make([]Param, 0, len(root.Members))
	for _, mod := range root.Members {
		if mod.Value.Kind != KindObject {
			return nil, malformed(mod.Key, nil)
		}

		l, okL := mod.Value.Get(paramLabel)
		sl, okSL := mod.Value.Get(paramShortLabel)
		if okL && okSL && l.Kind == KindString && sl.Kind == KindString {
			params = append(params, Param{
				Module: mod.Key,
				Param:  paramLabel,
				Value:  l.Text + "," + sl.Text,
			})
		}

		for _, p := range mod.Value.Members {
			if p.Key == paramLabel || p.Key == paramShortLabel {
				continue
			}
			s, err := paramValueString(mod.Key, p.Key, p.Value)
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Module: mod.Key, Param: p.Key, Value: s})
		}
	}
	return params, nil
}

func paramValueString(module, param string, v Value) (string, error) {
	switch v.Kind {
	case KindNull:
		return "null", nil
	case KindBool:
		if v.Bool {
			return "1", nil
		}
		return "0", nil
	case KindNumber:
		return decimalText(v.Text), nil
	case KindString:
		return v.Text, nil
	default:
		return "", &UnsupportedValueShapeError{Module: module, Param: param, Kind: v.Kind}
	}
}

// Unflatten rebuilds a showjson-shaped tree from a parameter list. A "label"
// value is split at its first comma into label and shortlabel. Every value is
// emitted as a JSON string.
func Unflatten(params []Param) Value {
	root := Object()
	index := map[string]int{}
	for _, p := range params {
		i, ok := index[p.Module]
		if !ok {
			i = len(root.Members)
			index[p.Module] = i
			root.Members = append(root.Members, Member{Key: p.Module, Value: Object()})
		}
		mod := &root.Members[i].Value

		if p.Param == paramLabel {
			if l, sl, found := strings.Cut(p.Value, ","); found {
				mod.Members = append(mod.Members,
					Member{Key: paramLabel, Value: String(l)},
					Member{Key: paramShortLabel, Value: String(sl)},
				)
				continue
			}
		}
		mod.Members = append(mod.Members, Member{Key: p.Param, Value: String(p.Value)})
	}
	return root
}

// decimalText renders a number in plain decimal notation. Exponent forms such
// as 1e5 are expanded; everything else keeps the text the peer sent.
func decimalText(text string) string {
	if !strings.ContainsAny(text, "eE") {
		return text
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
