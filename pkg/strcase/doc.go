// Package strcase converts strings between common naming conventions:
// snake_case, camelCase, PascalCase and kebab-case.
//
// The converters are boundary-aware rather than separator-only: uppercase
// transitions inside a word are treated as word boundaries, and acronym runs
// are kept together.
//
//	strcase.ToSnakeCase("HTTPResponse") // "http_response"
//	strcase.ToSnakeCase("getAPI")       // "get_api"
//	strcase.ToCamelCase("snake_case")   // "snakeCase"
//	strcase.ToPascalCase("hello world") // "HelloWorld"
//	strcase.ToKebabCase("camelCase")    // "camel-case"
//
// Camel and Pascal conversion tokenize on underscores, hyphens and whitespace;
// snake and kebab conversion insert separators at case boundaries and convert
// spaces, leaving existing separators untouched. All functions are total over
// arbitrary Unicode input and never return an error.
//
// ToPascalCase is not idempotent in general: once separators are gone the
// whole string is a single token, so ToPascalCase(ToPascalCase("hello world"))
// is "Helloworld", not "HelloWorld".
package strcase
