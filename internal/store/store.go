// Package store loads and saves the YAML configuration data that survives
// between runs: user account-type mappings for the classifier and spelling
// alias maps for the cleaning pipeline. Ledger state is never persisted.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bookkeep/journal-csv/internal/logging"
	"bookkeep/journal-csv/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// MappingStore manages the YAML files holding user mappings.
type MappingStore struct {
	AccountsFile string
	AliasesFile  string
}

// NewMappingStore creates a store. Empty file names fall back to the
// defaults (accounts.yaml, aliases.yaml) resolved via FindConfigFile.
func NewMappingStore(accountsFile, aliasesFile string) *MappingStore {
	return &MappingStore{
		AccountsFile: accountsFile,
		AliasesFile:  aliasesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the working directory, ./config/, and ~/.config/journal-csv/.
func (s *MappingStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "journal-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadAccountMappings loads account-name to account-type overrides. A
// missing file is not an error; the classifier just uses its curated table.
func (s *MappingStore) LoadAccountMappings() (map[string]models.AccountType, error) {
	filename := s.AccountsFile
	if filename == "" {
		filename = "accounts.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Account mappings file not found, using curated table only",
				logging.Field{Key: logging.FieldFile, Value: filename},
			)
			return map[string]models.AccountType{}, nil
		}
		return nil, fmt.Errorf("error resolving account mappings file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading account mappings file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing account mappings: %w", err)
	}

	mappings := make(map[string]models.AccountType, len(raw))
	for name, typeName := range raw {
		category, ok := models.ParseAccountType(typeName)
		if !ok {
			log.Warn("Skipping account mapping with unknown type",
				logging.Field{Key: logging.FieldAccount, Value: name},
				logging.Field{Key: logging.FieldAccountType, Value: typeName},
			)
			continue
		}
		mappings[name] = category
	}

	log.WithField(logging.FieldCount, len(mappings)).Debug("Loaded account mappings")
	return mappings, nil
}

// SaveAccountMappings writes the overrides back to YAML, creating the file
// in ./config/ when it does not exist yet.
func (s *MappingStore) SaveAccountMappings(mappings map[string]models.AccountType) error {
	filename := s.AccountsFile
	if filename == "" {
		filename = "accounts.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving account mappings file: %w", err)
		}
		filePath = filename
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("config", filename)
		}
	}

	raw := make(map[string]string, len(mappings))
	for name, category := range mappings {
		raw[name] = string(category)
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("error marshaling account mappings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing account mappings: %w", err)
	}

	log.WithField(logging.FieldCount, len(mappings)).Debug("Saved account mappings")
	return nil
}

// Aliases holds the cleaning pipeline's spelling-normalization maps. Keys
// are matched case-insensitively against raw input values.
type Aliases struct {
	Accounts       map[string]string `yaml:"accounts"`
	Vendors        map[string]string `yaml:"vendors"`
	PaymentMethods map[string]string `yaml:"payment_methods"`
}

// LoadAliases loads the alias maps. A missing file yields empty maps so the
// cleaning pipeline runs with its built-in defaults only.
func (s *MappingStore) LoadAliases() (Aliases, error) {
	aliases := Aliases{
		Accounts:       map[string]string{},
		Vendors:        map[string]string{},
		PaymentMethods: map[string]string{},
	}

	filename := s.AliasesFile
	if filename == "" {
		filename = "aliases.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Aliases file not found, using built-in defaults",
				logging.Field{Key: logging.FieldFile, Value: filename},
			)
			return aliases, nil
		}
		return aliases, fmt.Errorf("error resolving aliases file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return aliases, fmt.Errorf("error reading aliases file: %w", err)
	}

	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return aliases, fmt.Errorf("error parsing aliases: %w", err)
	}

	if aliases.Accounts == nil {
		aliases.Accounts = map[string]string{}
	}
	if aliases.Vendors == nil {
		aliases.Vendors = map[string]string{}
	}
	if aliases.PaymentMethods == nil {
		aliases.PaymentMethods = map[string]string{}
	}

	log.WithFields(
		logging.Field{Key: "accounts", Value: len(aliases.Accounts)},
		logging.Field{Key: "vendors", Value: len(aliases.Vendors)},
		logging.Field{Key: "payment_methods", Value: len(aliases.PaymentMethods)},
	).Debug("Loaded aliases")
	return aliases, nil
}
