// File: verify.go
// Title: Schema Verification
// Description: Verifies invocations against command schemas with type
//              coercion and normalization
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package registry

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/msto63/mShell/command"
	msherror "github.com/msto63/mShell/core/error"
	"github.com/msto63/mShell/core/log"
)

// integerPattern matches flag values that coerce to numbers.
var integerPattern = regexp.MustCompile(`^-?\d+$`)

// ValidateSchema checks one command's schema for definition defects. A
// flag parameter without a datatype unregisters the command's group and
// returns a definition error. This is the startup self-protection
// check; Verify repeats it per invocation for commands defined later.
func (r *Registry) ValidateSchema(name string) error {
	r.mu.RLock()
	def, ok := r.defs[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return msherror.Newf("unknown command: %s", normalize(name)).
			WithCode(msherror.CodeUnknownCommand)
	}
	if param, defective := findUntypedFlag(def); defective {
		r.unregisterDefect(def.Name)
		return definitionError(def.Name, param)
	}
	return nil
}

// ValidateAll runs ValidateSchema across every canonical definition,
// collecting the defects. Alias clones share their canonical schema and
// are not checked twice.
func (r *Registry) ValidateAll() []error {
	r.mu.RLock()
	names := make([]string, 0, len(r.defs))
	for name, def := range r.defs {
		if def.aliasOf == "" {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := r.ValidateSchema(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// findUntypedFlag returns the first flag parameter missing a datatype.
func findUntypedFlag(def *Definition) (string, bool) {
	for _, param := range def.Params {
		if param.Kind == Flag && !param.HasType {
			return param.Name, true
		}
	}
	return "", false
}

// definitionError builds the error surfaced for a schema defect.
func definitionError(name, param string) error {
	return msherror.Newf("invalid command definition: flag parameter %s lacks a datatype", param).
		WithCode(msherror.CodeBadDefinition).
		WithDetail("command", name).
		WithDetail("parameter", param)
}

// Verify is the per-invocation gate run before every execution. It
// checks the fragment against the command's schema and returns the
// flag mapping with integer-looking values coerced to numbers. Keys
// are left as supplied; Normalize maps short names afterwards.
//
// Schema defects discovered here unregister the command before the
// error returns.
func (r *Registry) Verify(name string, args []string, flags command.Flags) (command.Flags, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return nil, msherror.Newf("unknown command: %s", normalize(name)).
			WithCode(msherror.CodeUnknownCommand)
	}

	// Positional parameters consume arguments in schema order. Pipe
	// input never substitutes for a required argument here; only the
	// handler may decide that.
	pos := 0
	for _, param := range def.Params {
		if param.Kind != Positional {
			continue
		}
		if pos >= len(args) {
			if param.Required {
				return nil, msherror.Newf("missing required argument: %s", param.Name).
					WithCode(msherror.CodeMissingArgument).
					WithDetail("command", def.Name)
			}
			continue
		}
		value := args[pos]
		pos++
		if len(param.Allowed) > 0 && !contains(param.Allowed, value) {
			return nil, msherror.Newf("invalid value for argument: %s", param.Name).
				WithCode(msherror.CodeInvalidArgument).
				WithDetail("command", def.Name).
				WithDetail("value", value)
		}
	}

	for _, param := range def.Params {
		if param.Kind != Flag || !param.Required {
			continue
		}
		if !flags.Has(param.Name) && (param.Short == "" || !flags.Has(param.Short)) {
			return nil, msherror.Newf("missing required flag: %s", param.Name).
				WithCode(msherror.CodeMissingFlag).
				WithDetail("command", def.Name)
		}
	}

	// Supplied flags: resolve against the schema, coerce integer
	// strings, then compare runtime type to the declared datatype.
	// Unknown flags pass through untouched.
	verified := make(command.Flags, len(flags))
	for supplied, value := range flags {
		param, known := resolveFlag(def, supplied)
		if !known {
			verified[supplied] = value
			continue
		}
		if !param.HasType {
			r.unregisterDefect(def.Name)
			return nil, definitionError(def.Name, param.Name)
		}
		if value.Kind == command.KindString && integerPattern.MatchString(value.Str) {
			if n, err := strconv.ParseInt(value.Str, 10, 64); err == nil {
				value = command.NumberValue(n)
			}
		}
		if value.Kind != param.Type {
			return nil, msherror.Newf("invalid value for flag %s: expected %s, got %s",
				supplied, param.Type, value.Kind).
				WithCode(msherror.CodeInvalidFlag).
				WithDetail("command", def.Name)
		}
		verified[supplied] = value
	}

	// A default that disagrees with its declared datatype is a
	// definition defect, caught even when the flag was not supplied.
	for _, param := range def.Params {
		if param.Default == nil || !param.HasType {
			continue
		}
		if param.Default.Kind != param.Type {
			r.unregisterDefect(def.Name)
			return nil, msherror.Newf("invalid command definition: default for %s does not match datatype", param.Name).
				WithCode(msherror.CodeBadDefinition).
				WithDetail("command", def.Name).
				WithDetail("parameter", param.Name)
		}
	}

	r.logger.Trace("fragment verified",
		log.String("command", def.Name), log.Int("args", len(args)))
	return verified, nil
}

// Normalize rewrites short flag names to their canonical long names
// and injects declared defaults for absent flags. It runs once after
// verification succeeds, on the verified mapping. The input is not
// modified.
func (r *Registry) Normalize(name string, flags command.Flags) command.Flags {
	normalized := flags.Clone()
	if normalized == nil {
		normalized = command.Flags{}
	}

	def, ok := r.Lookup(name)
	if !ok {
		return normalized
	}

	for _, param := range def.Params {
		if param.Kind != Flag {
			continue
		}
		if param.Short != "" && param.Short != param.Name {
			if value, has := normalized[param.Short]; has {
				if !normalized.Has(param.Name) {
					normalized[param.Name] = value
				}
				delete(normalized, param.Short)
			}
		}
		if param.Default != nil && !normalized.Has(param.Name) {
			normalized[param.Name] = *param.Default
		}
	}
	return normalized
}

// resolveFlag matches a supplied flag name against the schema by long
// or short name.
func resolveFlag(def *Definition, supplied string) (Param, bool) {
	for _, param := range def.Params {
		if param.Kind != Flag {
			continue
		}
		if param.Name == supplied || (param.Short != "" && param.Short == supplied) {
			return param, true
		}
	}
	return Param{}, false
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
