// Package ruleset loads declarative rule sets from YAML or JSON files
// into rulekit.Fields, so validation rules can live next to other
// configuration instead of in code.
//
// A rule-set file is a flat mapping from field path to rule string:
//
//	user.email: required|email
//	user.age:   required|greater_than:18
//	user.name:  length:1..50
//
// # Usage
//
//	fields, err := ruleset.Load("rules/signup.yaml")
//	if err != nil {
//	    return err
//	}
//	bag, err := validator.Validate(record, fields)
//
// Loading only parses the file shape; rule names and arguments are
// resolved by the validator's registry, which reports a
// *rulekit.ConfigurationError before any data is evaluated.
package ruleset
