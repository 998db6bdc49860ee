package gltfdoc_test

import (
	"testing"

	gltfdoc "github.com/lumel/gltfdoc"
)

func TestParseValue_PreservesMemberOrderAndNumberText(t *testing.T) {
	in := []byte(`{"zeta":1.50,"alpha":[true,null,"x"],"mid":{"b":2,"a":1e3}}`)
	v, err := gltfdoc.ParseValue(in)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out, err := v.AppendJSON(nil)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("round trip changed the document:\n in:  %s\n out: %s", in, out)
	}
}

func TestParseValue_SyntaxError(t *testing.T) {
	_, err := gltfdoc.ParseValue([]byte(`{"asset":`))
	if err == nil {
		t.Fatalf("expected syntax error, got nil")
	}
	fe, ok := gltfdoc.AsFieldError(err)
	if !ok {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	if fe.Code != gltfdoc.CodeSyntaxError {
		t.Fatalf("expected code %q, got %q", gltfdoc.CodeSyntaxError, fe.Code)
	}
}

func TestParseValue_TrailingData(t *testing.T) {
	_, err := gltfdoc.ParseValue([]byte(`{} {}`))
	if err == nil {
		t.Fatalf("expected error on trailing data, got nil")
	}
	fe, ok := gltfdoc.AsFieldError(err)
	if !ok || fe.Code != gltfdoc.CodeSyntaxError {
		t.Fatalf("expected syntax_error, got %v", err)
	}
}

func TestValue_Equal(t *testing.T) {
	a, err := gltfdoc.ParseValue([]byte(`{"x":[1,2,{"k":"v"}]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, err := gltfdoc.ParseValue([]byte(`{"x":[1,2,{"k":"v"}]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal values")
	}
	c, err := gltfdoc.ParseValue([]byte(`{"x":[1,2,{"k":"w"}]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal values")
	}
	// Same members, different order: not equal under order-aware comparison.
	d, err := gltfdoc.ParseValue([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	e, err := gltfdoc.ParseValue([]byte(`{"b":2,"a":1}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Equal(e) {
		t.Fatalf("expected order-sensitive inequality")
	}
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	o := gltfdoc.NewObject()
	o.Set("a", gltfdoc.NumberValue("1"))
	o.Set("b", gltfdoc.NumberValue("2"))
	o.Set("a", gltfdoc.NumberValue("3"))
	if got := o.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected key order: %v", got)
	}
	v, ok := o.Get("a")
	if !ok || v.Number() != "3" {
		t.Fatalf("expected replaced value 3, got %v", v.Number())
	}
}
