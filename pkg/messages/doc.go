// Package messages resolves violation messages to templates.
//
// Every constraint.ViolationMessage carries a default template. A Catalog
// lets an application replace those templates, by code or by key, from
// YAML or JSON files, an fs.FS or code, without touching the rules that
// produce the violations. Rendering is not done here: Resolve returns the
// template and the positional arguments, and the caller fills {0} with the
// field name and {1}... with the arguments.
//
// # Catalog files
//
// Entries may use codes or nested keys:
//
//	CONTAINER_NOT_EMPTY: "{0} is required"
//	container:
//	  lessThan: "{0} accepts fewer than {1} items, got {2}"
//
// # Usage
//
//	catalog := messages.New(messages.WithStrict(true))
//	if err := catalog.LoadFile(ctx, "messages/en.yaml"); err != nil {
//	    return err
//	}
//	for _, v := range violations {
//	    tmpl, args := catalog.Resolve(v)
//	    render(tmpl, field, args...)
//	}
//
// LoadFromEnv builds the catalog from RULEKIT_MESSAGES_PATH and
// RULEKIT_MESSAGES_STRICT via the config package.
package messages
