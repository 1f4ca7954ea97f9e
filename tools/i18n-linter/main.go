// Copyright (c) 2025 ToeiRei
// Tracelens - command-line client for the Langfuse observability API
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter is a tool to check for missing or orphaned translation keys.
// It scans the Go source code for i18n.T() calls and compares them against
// the YAML locale files to ensure consistency.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

func main() {
	fmt.Println("🔍 Running i18n linter...")

	usedKeys, err := findUsedKeys(projectRoot)
	if err != nil {
		fmt.Printf("❌ Error finding used keys: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys used in source code.\n", len(usedKeys))

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ Error finding locale files: %v\n", err)
		os.Exit(1)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("❌ Error loading primary locale '%s': %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	hasMissingKeys := false
	hasOrphanedKeys := false

	// Keys defined in the primary locale but never referenced in code.
	fmt.Println("--- Checking for Orphaned Keys (in primary locale but not used in code) ---")
	var orphanedKeys []string
	for key := range primaryKeys {
		if _, exists := usedKeys[key]; !exists {
			orphanedKeys = append(orphanedKeys, key)
		}
	}
	sort.Strings(orphanedKeys)
	for _, key := range orphanedKeys {
		fmt.Printf("  - Orphaned: %s\n", key)
		hasOrphanedKeys = true
	}
	if !hasOrphanedKeys {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()

	// Keys used in code but absent from the primary locale. These fall back
	// to the raw message ID at runtime.
	fmt.Println("--- Checking for Undefined Keys (used in code but not in primary locale) ---")
	var undefinedKeys []string
	for key := range usedKeys {
		if _, exists := primaryKeys[key]; !exists {
			undefinedKeys = append(undefinedKeys, key)
		}
	}
	sort.Strings(undefinedKeys)
	for _, key := range undefinedKeys {
		fmt.Printf("  - Undefined: %s\n", key)
		hasMissingKeys = true
	}
	if len(undefinedKeys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()

	// Every secondary locale must carry the full primary key set.
	fmt.Println("--- Checking for Missing Keys (in primary locale but not in others) ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}

		fmt.Printf("Checking %s:\n", file)
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - ❌ Error loading %s: %v\n", file, err)
			hasMissingKeys = true
			continue
		}

		missingFound := false
		var missingKeys []string
		for key := range primaryKeys {
			if _, exists := secondaryKeys[key]; !exists {
				missingKeys = append(missingKeys, key)
			}
		}

		sort.Strings(missingKeys)
		for _, key := range missingKeys {
			fmt.Printf("  - Missing: %s\n", key)
			missingFound = true
			hasMissingKeys = true
		}

		if !missingFound {
			fmt.Println("  ✨ All keys present.")
		}
	}

	fmt.Println("\n--- Linter Finished ---")
	if hasMissingKeys {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	} else if hasOrphanedKeys {
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	} else {
		fmt.Println("✅ All translation files are consistent!")
	}
}

// findUsedKeys scans all .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.T\("([^"]+)"`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// The linter must not lint itself or the reference pack.
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if !info.IsDir() && strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			for _, match := range re.FindAllStringSubmatch(string(content), -1) {
				keys[match[1]] = struct{}{}
			}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads one locale file and returns its flattened key set.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", parsed, keys)
	return keys, nil
}

// flattenYAML collapses nested locale maps into dotted keys. The locale files
// use flat dotted keys already, but nested maps stay supported so a future
// restructuring does not break the linter.
func flattenYAML(prefix string, value interface{}, keys map[string]struct{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenYAML(key, child, keys)
		}
	case []interface{}:
		for i, child := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), child, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
