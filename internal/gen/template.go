package gen

import (
	"io"
	"strings"
	"text/template"
)

// Case is one member of the generated enumeration.
type Case struct {
	// Member is the Swift identifier of the case
	Member string
	// Raw is the bundle name, used as the case's raw value
	Raw string
}

// Enum is everything the Swift template needs.
type Enum struct {
	Name         string
	ImportModule string
	Depth        uint
	Cases        []Case
}

// Render writes the generated Swift source for e to w.
func Render(w io.Writer, e Enum) error {
	if e.Name == "" {
		e.Name = DefaultEnumName
	}
	if e.ImportModule == "" {
		e.ImportModule = DefaultImportModule
	}

	return swiftTemplate.Execute(w, struct {
		Enum
		Indent      string
		ChildIndent string
	}{
		Enum:        e,
		Indent:      tabs(e.Depth),
		ChildIndent: tabs(e.Depth + 1),
	})
}

func tabs(n uint) string {
	return strings.Repeat("\t", int(n))
}

var swiftTemplate = template.Must(template.New("image_name").Parse(`// This file is autogenerated. Do not modify.
import {{ .ImportModule }}

{{ .Indent }}enum {{ .Name }}: String {
{{- range .Cases }}
{{ $.ChildIndent }}case {{ .Member }} = "{{ .Raw }}"
{{- end }}
{{ .Indent }}}

extension UIImageView {
    func setImage(_ name: {{ .Name }}) {
        guard let image = UIImage(named: name.rawValue) else {
            assertionFailure("Image not found")
            return
        }
        self.image = image
    }
}
`))
