/*
Package parser converts gii-norm XML documents, as published by
gesetze-im-internet.de, into model records.

A document is read in two passes over the same bytes. The first pass,
xmlutil.Scan, is a strict encoding/xml tokenization which rejects
input that is not a single well-formed UTF-8 document and records the
byte span of every outermost <table>. The second pass builds an
xmlquery tree, from which the root's <norm> children are parsed in
document order.

Error handling

Input failing the first pass yields a giierr.Error of kind
KindSyntax, and no Document. Every other anomaly is local to one norm or
one footnote container and is collected in Result.Warnings:

  missing-metadata       the <norm> has no <metadaten>; the norm is omitted
  duplicate-footnote-id  a <Footnotes> container repeats an ID; the last
                         content wins, at the position of the first

Elements without a specific rule in the flattening table are handled
as transparent containers and are only logged (glog V(1)), as
unrecognized-element notices, and reported to any Observer.

Concurrency

A Parser is not modified after New, and may be used by any number of
goroutines at once; each parse allocates its own state.
*/
package parser
