// package models defines the data model for the VideoTube client.
//
// All entities are keyed by a stable server-assigned id. The User held by
// the session store is the only identity-bearing record; resource models
// reference owners by id and never mutate identity fields.
package models
