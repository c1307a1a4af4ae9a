package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "item {{ .Index }}",
			data: map[string]any{"Index": 3},
			want: "item 3",
		},
		{
			name: "struct data",
			tmpl: "{{ .Type }} at {{ .X }},{{ .Y }}",
			data: struct {
				Type string
				X, Y float64
			}{Type: "photo", X: 100, Y: 50},
			want: "photo at 100,50",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "fixed precision",
			tmpl: "{{ fixed 1 .Width }}",
			data: map[string]float64{"Width": 33.3333},
			want: "33.3",
		},
		{
			name: "pad",
			tmpl: "[{{ pad 6 .Type }}]",
			data: map[string]string{"Type": "ad"},
			want: "[ad    ]",
		},
		{
			name: "pad longer than width",
			tmpl: "[{{ pad 2 .Type }}]",
			data: map[string]string{"Type": "banner"},
			want: "[banner]",
		},
		{
			name: "join and upper",
			tmpl: `{{ join .Types "," | upper }}`,
			data: map[string][]string{"Types": {"a", "b"}},
			want: "A,B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplate_Reuse(t *testing.T) {
	tpl, err := Parse("{{ .Index }}")
	require.NoError(t, err)

	for i, want := range []string{"0", "1"} {
		got, err := tpl.Execute(map[string]int{"Index": i})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
