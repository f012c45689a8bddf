package javasrc

import "testing"

const calculatorSource = `package com.example;

public class Calculator {

    private int defaultScale;

    public Calculator(int defaultScale) {
        this.defaultScale = defaultScale;
    }

    public int parseToInt(String input) {
        return Integer.parseInt(input.trim());
    }

    public void setCount(int count, boolean strict) {
        // ...
    }

    public String join(String... parts) {
        return String.join(",", parts);
    }
}
`

func findMethod(t *testing.T, methods []Method, name string) Method {
	t.Helper()
	for _, m := range methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("Method %s not found in %+v", name, methods)
	return Method{}
}

func TestParser_ParseString(t *testing.T) {
	p := NewParser()
	defer p.Close()

	methods, err := p.ParseString(calculatorSource)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(methods) != 4 {
		t.Fatalf("Expected 4 declarations, got %d: %+v", len(methods), methods)
	}

	parse := findMethod(t, methods, "parseToInt")
	if parse.ClassName != "Calculator" {
		t.Errorf("Expected enclosing class Calculator, got %s", parse.ClassName)
	}
	if len(parse.Parameters) != 1 {
		t.Fatalf("Expected 1 parameter, got %+v", parse.Parameters)
	}
	if parse.Parameters[0].Name != "input" || parse.Parameters[0].Type != "String" {
		t.Errorf("Unexpected parameter: %+v", parse.Parameters[0])
	}

	setCount := findMethod(t, methods, "setCount")
	if len(setCount.Parameters) != 2 {
		t.Fatalf("Expected 2 parameters, got %+v", setCount.Parameters)
	}
	if setCount.Parameters[1].Name != "strict" || setCount.Parameters[1].Type != "boolean" {
		t.Errorf("Unexpected parameter: %+v", setCount.Parameters[1])
	}

	ctor := findMethod(t, methods, "Calculator")
	if len(ctor.Parameters) != 1 || ctor.Parameters[0].Name != "defaultScale" {
		t.Errorf("Constructor parameters not extracted: %+v", ctor.Parameters)
	}
}

func TestParser_NoMethods(t *testing.T) {
	p := NewParser()
	defer p.Close()

	methods, err := p.ParseString("package com.example;\n\npublic interface Marker {}\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(methods) != 0 {
		t.Errorf("Expected no methods, got %+v", methods)
	}
}
