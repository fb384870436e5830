package service

import (
	"fmt"
	"strings"

	"scheme-navigator/internal/models"
)

// RenderSchemesMarkdown presents schemes in the assistant's markdown layout.
func RenderSchemesMarkdown(schemes []models.SchemeEntity) string {
	if len(schemes) == 0 {
		return noMatchMessage
	}

	var b strings.Builder
	if len(schemes) > 1 {
		b.WriteString("Top 3 Relevant Schemes:\n\n")
	}
	for i, s := range schemes {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		renderScheme(&b, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderScheme(b *strings.Builder, s models.SchemeEntity) {
	fmt.Fprintf(b, "## 🎓 Scheme Name: %s\n\n", s.SchemeName)

	writeList(b, "### 🎯 Objectives", s.Objectives, false)

	if s.Benefits.Truthy() {
		b.WriteString("### 💰 Benefits\n")
		writeBenefits(b, s.Benefits, 0)
		b.WriteString("\n")
	}

	writeList(b, "### ✅ Eligibility Criteria", s.EligibilityCriteria, false)
	writeList(b, "### 📝 Application Process", s.ApplicationSteps, true)
	writeList(b, "### 📄 Documents Required", s.DocumentsRequired, false)

	if len(s.OfficialLinks) > 0 {
		b.WriteString("### 🔗 Official Links\n")
		for _, link := range s.OfficialLinks {
			fmt.Fprintf(b, "👉 %s\n", link)
		}
		b.WriteString("\n")
	}
}

func writeList(b *strings.Builder, header string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	b.WriteString("\n")
}

// writeBenefits prints a benefits tree as nested bullets, keys in the order
// they were written.
func writeBenefits(b *strings.Builder, v *models.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind {
	case models.KindObject:
		for _, f := range v.Fields {
			label := humanizeKey(f.Key)
			if f.Value != nil && (f.Value.Kind == models.KindObject || f.Value.Kind == models.KindArray) {
				fmt.Fprintf(b, "%s- **%s**\n", indent, label)
				writeBenefits(b, f.Value, depth+1)
				continue
			}
			fmt.Fprintf(b, "%s- %s: %s\n", indent, label, scalarText(f.Value))
		}
	case models.KindArray:
		for _, item := range v.Items {
			if item != nil && (item.Kind == models.KindObject || item.Kind == models.KindArray) {
				writeBenefits(b, item, depth)
				continue
			}
			fmt.Fprintf(b, "%s- %s\n", indent, scalarText(item))
		}
	default:
		fmt.Fprintf(b, "%s- %s\n", indent, scalarText(v))
	}
}

func humanizeKey(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func scalarText(v *models.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case models.KindString:
		return strings.TrimSpace(v.Str)
	case models.KindNumber:
		return v.Num.String()
	case models.KindBool:
		if v.Bool {
			return "Yes"
		}
		return "No"
	}
	return ""
}
