// Package monkey implements the front end of the Monkey language: a byte
// oriented lexer and a Pratt parser that builds an AST. The language covers:
//   - Bindings via `let name = expr;` and `return expr;`.
//   - Integer and boolean literals, identifiers.
//   - Prefix operators `!` and `-`; infix `+ - * / < > == !=` with the usual
//     precedence and left associativity; parentheses for grouping.
//   - `if (cond) { ... } else { ... }` and `fn(a, b) { ... }` expressions.
//
// Parsing never stops at the first problem. Each failure is recorded as a
// diagnostic and the parser moves on, so callers must check Parser.Errors
// before handing a Program to any later stage.
package monkey
