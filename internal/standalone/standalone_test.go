package standalone

import (
	"testing"

	"github.com/phobologic/nglazy/internal/program"
)

func load(t *testing.T, files map[string]string) *program.Program {
	t.Helper()
	sources := make([]program.FileSource, 0, len(files))
	for path, src := range files {
		sources = append(sources, program.FileSource{Path: path, Source: []byte(src)})
	}
	p, err := program.Load(sources, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func classOf(t *testing.T, source, name string) *program.Class {
	t.Helper()
	p := load(t, map[string]string{"c.ts": source})
	c, ok := p.FileAt("c.ts").Classes[name]
	if !ok {
		t.Fatalf("class %q not found", name)
	}
	return c
}

func TestIsStandalone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		source string
		want   bool
	}{
		{
			"standalone true",
			`@Component({ selector: 'app-a', standalone: true })
export class A {}
`,
			true,
		},
		{
			"standalone false",
			`@Component({ standalone: false })
export class A {}
`,
			false,
		},
		{
			"standalone missing",
			`@Component({ selector: 'app-a' })
export class A {}
`,
			false,
		},
		{
			"standalone non-literal",
			`@Component({ standalone: isStandalone() })
export class A {}
`,
			false,
		},
		{
			"no decorator",
			"export class A {}\n",
			false,
		},
		{
			"other decorator",
			`@Injectable({ standalone: true })
export class A {}
`,
			false,
		},
		{
			"directive decorator ignored",
			`@Directive({ standalone: true })
@Component({ standalone: true })
export class A {}
`,
			true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := classOf(t, tc.source, "A")
			if got := IsStandalone(c); got != tc.want {
				t.Errorf("IsStandalone = %v, want %v", got, tc.want)
			}
		})
	}
}
