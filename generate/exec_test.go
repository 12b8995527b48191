package generate

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

// run executes the module generated for src with lli and returns its standard
// output.  The test is skipped when lli is not installed.
func run(t *testing.T, src string) string {
	t.Helper()

	lli, err := exec.LookPath("lli")
	if err != nil {
		t.Skip("lli not found in PATH")
	}

	m := compile(t, src)

	path := filepath.Join(t.TempDir(), "out.ll")
	be.Err(t, os.WriteFile(path, []byte(m.String()), 0644), nil)

	out, err := exec.Command(lli, path).Output()
	be.Err(t, err, nil)
	return string(out)
}

func TestExecPrint(t *testing.T) {
	out := run(t, `
var c: char; f: float;
begin
	c := 'a';
	f := 5 / 2;
	print("c is", c, f, true, 1 < 0);
	print(ord('A'), chr(66), ent(3.9));
end
`)

	be.Equal(t, out, "c is a 2.500000 vrai faux\n65 B 3\n")
}

func TestExecLoops(t *testing.T) {
	out := run(t, `
var i, s: int;
begin
	for i from 1 to 10 do
		s := s + i;
	endfor
	print(s, i);

	s := 0;
	while s < 5 do
		s := s + 2;
	endwhile
	print(s);

	do
		s := s - 1;
	enddo while s > 100;
	print(s);

	for i from 3 to 1 do
		print(i);
	endfor
end
`)

	be.Equal(t, out, "55 11\n6\n5\n")
}

func TestExecFunctions(t *testing.T) {
	out := run(t, `
type V = array[5] of int;

func fact(n: int): int
begin
	if n <= 1 then
		return 1;
	endif
	return n * fact(n - 1);
end

func fact(x: float): float
begin
	return x;
end

func sum(v: V): int
var i, s: int;
begin
	for i from 0 to 4 do
		s := s + v[i];
	endfor
	return s;
end

var v: V; i: int;
begin
	for i from 0 to 4 do
		v[i] := i * i;
	endfor
	print(fact(5), fact(1.5), sum(v));
end
`)

	be.Equal(t, out, "120 1.500000 30\n")
}
