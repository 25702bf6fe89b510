/*
Package rotor is the front end of the Rotor compiler. It scans source text
into tokens and parses the leading statements of a program.

Grammars

	program   --> ( stmt | NEWLINE | ";" )* ;
	stmt      --> letStmt
	            | useStmt
	            | ifStmt
	            | forStmt
	            | whileStmt ;
	letStmt   --> ( "let" | "const" ) IDENT ( ":" type )? "=" INTEGER ";" ;
	type      --> "i32" | "f32" | "bool" | "str" ;
	useStmt   --> "use" IDENT "[" ( "*" | IDENT | "," )* "]" ;
	ifStmt    --> "if" BOOLEAN block ( "else" block )? ;
	forStmt   --> "for" IDENT "in" IDENT block ;
	whileStmt --> "while" BOOLEAN block ;
	block     --> "{" "}" ;

Expressions are limited to a single literal: INTEGER in let bindings and
BOOLEAN in conditions. Block bodies are always empty.

Scanning rules worth knowing:
+ A keyword only matches a whole identifier, "letter" is an IDENT.
+ "f32" scans as a FLOAT token.
+ A number is INTEGER unless one '.' followed by a digit makes it FLOAT.
+ A '-' before a number is its own MINUS token.
+ Tabs advance the column by 4.
+ A string without its closing quote runs to the end of input, silently.
*/
package rotor
