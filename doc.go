/*
Package gii is a set of support libraries for gii-norm, the XML
format of the federal German legal codes published at
gesetze-im-internet.de.

The parser sub-directory turns a gii-norm document into the records of
the model sub-directory: one Norm per addressable unit of a code, with
its metadata and its flattened text. Mixed-content markup is reduced to
plain text by the flatten sub-directory, and tables are kept as their
verbatim source markup.

Parsing is lenient about content and strict about syntax: input that is
not a single well-formed UTF-8 XML document is rejected with a giierr
syntax error, while missing metadata and repeated footnote identifiers
are reported as warnings alongside the parsed document.

The serialize sub-directory converts records to ordered generic values
and JSON, and the record sub-directory projects documents into the
per-paragraph legal text rows used for search ingestion.
*/
package gii
