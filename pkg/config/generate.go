package config

import "strings"

// GenerateContent returns a starter config file with every setting
// present but commented out, so the file documents the defaults
// without pinning them.
func GenerateContent() string {
	return commentOutValues(string(defaultSettings))
}

// commentOutValues comments every assignment line in the TOML
// content, leaving comments, blank lines and section headers as-is.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
