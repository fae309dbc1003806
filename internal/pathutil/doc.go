// Package pathutil provides path helpers shared by the configuration model,
// the validator, and the generator.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// field paths such as "tools[2].parameters[0].properties.street" without
// allocating intermediate strings. Construction and validation walk nested
// parameters and only materialize a path when reporting a problem.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("tools")
//	path.PushIndex(0)  // "tools[0]"
//	path.Push("endpoint")
//	return &mcperrors.StructuralError{Path: path.String(), ...}
//
// # Endpoint Placeholders
//
// [Placeholders] extracts the distinct {name} tokens from an endpoint path
// template, in first-seen order:
//
//	pathutil.Placeholders("/users/{user_id}/posts/{post_id}") // ["user_id", "post_id"]
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] makes a write target absolute and refuses symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
