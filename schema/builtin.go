package schema

// SchemaNS is the XML Schema namespace. Every built-in XSD type lives here.
const SchemaNS = "http://www.w3.org/2001/XMLSchema"

// xmlNS is the namespace carrying xml:lang, xml:space, xml:base and xml:id.
// IsBuiltin accepts it alongside the schema namespace, but only for the
// type names in builtins; xml:lang and its siblings are not built-ins.
const xmlNS = "http://www.w3.org/XML/1998/namespace"

// builtins lists the names of the XSD primitive and derived built-in
// types, mirroring the W3C "XML Schema Part 2: Datatypes" built-in table.
// Unlike a generated stringer table, this is a plain map: the set of
// built-ins never grows at runtime and there is no code-generation step
// in this module.
var builtins = map[string]bool{
	"anyType": true, "anySimpleType": true,
	"string": true, "boolean": true, "decimal": true, "float": true, "double": true,
	"duration": true, "dateTime": true, "time": true, "date": true,
	"gYearMonth": true, "gYear": true, "gMonthDay": true, "gDay": true, "gMonth": true,
	"hexBinary": true, "base64Binary": true, "anyURI": true, "QName": true, "NOTATION": true,
	"normalizedString": true, "token": true, "language": true, "NMTOKEN": true, "NMTOKENS": true,
	"Name": true, "NCName": true, "ID": true, "IDREF": true, "IDREFS": true, "ENTITY": true, "ENTITIES": true,
	"integer": true, "nonPositiveInteger": true, "negativeInteger": true, "long": true, "int": true,
	"short": true, "byte": true, "nonNegativeInteger": true, "unsignedLong": true, "unsignedInt": true,
	"unsignedShort": true, "unsignedByte": true, "positiveInteger": true,
}

// IsBuiltin reports whether qn names one of the built-in XSD types. Such
// types never appear in the schema registry and, per the type expander's
// contract (§4.6 step 4), never recurse: they always contribute a single
// leaf attribute.
func IsBuiltin(qn QualifiedName) bool {
	if qn.NamespaceURI != SchemaNS && qn.NamespaceURI != xmlNS {
		return false
	}
	return builtins[qn.LocalName]
}
