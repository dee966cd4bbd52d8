// Package domain contains the core entities and value objects of the
// application: repository references and metadata, and the README produced
// for a request. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
