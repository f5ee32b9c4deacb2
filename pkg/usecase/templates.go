package usecase

const defaultSuccessComment = `:tada: This {{if .Issue.IsPullRequest}}PR is included{{else}}issue has been resolved{{end}} in version {{.NextRelease.Version}} :tada:
{{- with .Releases}}

The release is available on:
{{- range .}}
- {{if .URL}}[{{.Name}}]({{.URL}}){{else}}` + "`{{.Name}}`" + `{{end}}
{{- end}}
{{- end}}`

const defaultReleasedLabel = `released{{with .NextRelease.Channel}} on @{{.}}{{end}}`

const defaultFailTitle = `The automated release is failing :rotating_light:`

const defaultFailComment = `## :rotating_light: The automated release from the ` + "`{{.Branch.Name}}`" + ` branch failed. :rotating_light:

The release could not be published. Every error below needs to be fixed before the next release can run.

Once the problems are fixed, push a new commit to the ` + "`{{.Branch.Name}}`" + ` branch and this issue is closed by the next successful release.
{{range .Errors}}
---

### {{.Message}}

{{.Details}}
{{end}}`

var defaultFailLabels = []string{"crier"}

func textOr(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}
