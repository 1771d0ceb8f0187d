// Package rules is the catalog of analysis rule identifiers. Some numbers are
// reserved for retired or unported checks; they are kept out of the exported
// identifiers so no caller can reference them.
package rules

import (
	"strings"

	"github.com/fatih/camelcase"
)

// ID is a stable rule identifier such as "BA2001".
type ID string

// Internal errors.
const (
	UnhandledRuleException   ID = "BA0998"
	UnhandledEngineException ID = "BA0999"
)

// Analysis checks.
const (
	LoadImageAboveFourGigabyteAddress       ID = "BA2001"
	DoNotIncorporateVulnerableDependencies  ID = "BA2002"
	DoNotShipVulnerableBinaries             ID = "BA2005"
	BuildWithSecureTools                    ID = "BA2006"
	EnableCriticalCompilerWarnings          ID = "BA2007"
	EnableControlFlowGuard                  ID = "BA2008"
	EnableAddressSpaceLayoutRandomization   ID = "BA2009"
	DoNotMarkImportsSectionAsExecutable     ID = "BA2010"
	EnableStackProtection                   ID = "BA2011"
	InitializeStackProtection               ID = "BA2012"
	DoNotModifyStackProtectionCookie        ID = "BA2013"
	DoNotDisableStackProtectionForFunctions ID = "BA2014"
	EnableHighEntropyVirtualAddresses       ID = "BA2015"
	MarkImageAsNXCompatible                 ID = "BA2016"
	EnableSafeSEH                           ID = "BA2018"
	DoNotMarkWritableSectionsAsShared       ID = "BA2019"
	DoNotMarkWritableSectionsAsExecutable   ID = "BA2021"
)

const (
	reserved2003 ID = "BA2003"
	reserved2004 ID = "BA2004"
	reserved2017 ID = "BA2017"
	reserved2020 ID = "BA2020"
)

// Status tells whether an identifier is currently assigned.
type Status string

const (
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
)

// Rule describes one catalog entry.
type Rule struct {
	ID     ID     `json:"id"`
	Name   string `json:"name,omitempty"`
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Title splits the symbolic name into words: "EnableSafeSEH" -> "Enable Safe SEH".
func (r Rule) Title() string {
	if r.Name == "" {
		return ""
	}
	return strings.Join(camelcase.Split(r.Name), " ")
}

var catalog = []Rule{
	{ID: UnhandledRuleException, Name: "UnhandledRuleException", Status: StatusActive},
	{ID: UnhandledEngineException, Name: "UnhandledEngineException", Status: StatusActive},
	{ID: LoadImageAboveFourGigabyteAddress, Name: "LoadImageAboveFourGigabyteAddress", Status: StatusActive},
	{ID: DoNotIncorporateVulnerableDependencies, Name: "DoNotIncorporateVulnerableDependencies", Status: StatusActive},
	{ID: reserved2003, Status: StatusReserved, Note: "open"},
	{ID: reserved2004, Status: StatusReserved, Note: "previously for specific ATL implementation verification"},
	{ID: DoNotShipVulnerableBinaries, Name: "DoNotShipVulnerableBinaries", Status: StatusActive},
	{ID: BuildWithSecureTools, Name: "BuildWithSecureTools", Status: StatusActive},
	{ID: EnableCriticalCompilerWarnings, Name: "EnableCriticalCompilerWarnings", Status: StatusActive},
	{ID: EnableControlFlowGuard, Name: "EnableControlFlowGuard", Status: StatusActive},
	{ID: EnableAddressSpaceLayoutRandomization, Name: "EnableAddressSpaceLayoutRandomization", Status: StatusActive},
	{ID: DoNotMarkImportsSectionAsExecutable, Name: "DoNotMarkImportsSectionAsExecutable", Status: StatusActive},
	{ID: EnableStackProtection, Name: "EnableStackProtection", Status: StatusActive},
	{ID: InitializeStackProtection, Name: "InitializeStackProtection", Status: StatusActive},
	{ID: DoNotModifyStackProtectionCookie, Name: "DoNotModifyStackProtectionCookie", Status: StatusActive},
	{ID: DoNotDisableStackProtectionForFunctions, Name: "DoNotDisableStackProtectionForFunctions", Status: StatusActive},
	{ID: EnableHighEntropyVirtualAddresses, Name: "EnableHighEntropyVirtualAddresses", Status: StatusActive},
	{ID: MarkImageAsNXCompatible, Name: "MarkImageAsNXCompatible", Status: StatusActive},
	{ID: reserved2017, Status: StatusReserved, Note: "previously for 'do not link static crypto' check"},
	{ID: EnableSafeSEH, Name: "EnableSafeSEH", Status: StatusActive},
	{ID: DoNotMarkWritableSectionsAsShared, Name: "DoNotMarkWritableSectionsAsShared", Status: StatusActive},
	{ID: reserved2020, Status: StatusReserved, Note: "previously for 'do not use vb6' check"},
	{ID: DoNotMarkWritableSectionsAsExecutable, Name: "DoNotMarkWritableSectionsAsExecutable", Status: StatusActive},
}

// Lookup returns the assigned rule for id. Unknown and reserved identifiers
// are simply not assigned: the zero Rule and false are returned.
func Lookup(id string) (Rule, bool) {
	for _, r := range catalog {
		if string(r.ID) == id && r.Status == StatusActive {
			return r, true
		}
	}
	return Rule{}, false
}

// IsReserved reports whether id is held back for a retired or unported check.
func IsReserved(id string) bool {
	for _, r := range catalog {
		if string(r.ID) == id {
			return r.Status == StatusReserved
		}
	}
	return false
}

// Active returns every assigned rule in identifier order.
func Active() []Rule {
	return filter(StatusActive)
}

// Reserved returns every reserved identifier in order.
func Reserved() []Rule {
	return filter(StatusReserved)
}

// All returns the whole catalog, reserved entries included.
func All() []Rule {
	out := make([]Rule, len(catalog))
	copy(out, catalog)
	return out
}

func filter(status Status) []Rule {
	var out []Rule
	for _, r := range catalog {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
