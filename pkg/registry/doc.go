// Package registry builds named contracts from external configuration.
//
// Legal value sets and numeric bounds belong to the adopting application, so
// they are read from a YAML document instead of being compiled in:
//
//	memberships:
//	  - name: color
//	    values: [red, green, blue]
//	ranges:
//	  - name: percent
//	    kind: integer
//	    min: 0
//	    max: 100
//	chains:
//	  - name: small_percent
//	    members: [percent, positive]
//
// Every registry also contains the built-in contracts listed by Builtins.
// A built Registry never changes.
package registry
