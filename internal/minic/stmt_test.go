package minic_test

import (
	"testing"
)

func TestDoWhileRunsBodyAtLeastOnce(t *testing.T) {
	src := `int main() { int i; i = 0; do { print(i); i = i + 1; } while (i < 0); end; }`
	stdout, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0 "; stdout != want {
		t.Fatalf("got %q, want %q", stdout, want)
	}
}

func TestBreakInNestedLoopOnlyExitsInner(t *testing.T) {
	src := `
int main() {
	int i, j;
	for (i = 0; i < 2; i = i + 1) {
		for (j = 0; j < 5; j = j + 1) {
			if (j == 1) break;
			print(j);
		}
		print(i);
	}
	end;
}`
	stdout, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0 0 0 1 "; stdout != want {
		t.Fatalf("got %q, want %q", stdout, want)
	}
}

func TestReturnFromInsideLoopSkipsUpdateClause(t *testing.T) {
	src := `
int f() {
	int i;
	for (i = 0; i < 10; i = i + 1) {
		if (i == 2) return i;
	}
	return -1;
}
int main() { print(f()); end; }`
	stdout, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "2 "; stdout != want {
		t.Fatalf("got %q, want %q", stdout, want)
	}
}

func TestIfElseChain(t *testing.T) {
	src := `
int classify(int n) {
	if (n < 0) return -1;
	else if (n == 0) return 0;
	else return 1;
}
int main() {
	print(classify(-5));
	print(classify(0));
	print(classify(5));
	end;
}`
	stdout, err := runProgram(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "-1 0 1 "; stdout != want {
		t.Fatalf("got %q, want %q", stdout, want)
	}
}
