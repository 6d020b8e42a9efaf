package model

import "time"

// Customer represents a guest account as stored in the `Customer`
// table. Each field corresponds to a column in the database. The
// json tags are omitted here because these structs are primarily
// used internally by the repository layer; handlers may define
// separate response types with appropriate JSON tags. The Address
// column exists in the schema but is no longer collected during
// registration, so it is carried as a nullable pointer.
//
// Fields:
//  MemberID  – primary key identifier of the customer.
//  FirstName – given name.
//  LastName  – family name.
//  Address   – postal address (deprecated; kept for schema compatibility).
//  Phone     – contact phone number.
//  RegDate   – date the account was registered.
//  Email     – unique email address.
//  Password  – bcrypt hashed password.
type Customer struct {
    MemberID  uint64    // Customer.Member_ID
    FirstName string    // Customer.F_name
    LastName  string    // Customer.Lname
    Address   *string   // Customer.Address (nullable, unused in current flows)
    Phone     string    // Customer.Phonenumber
    RegDate   time.Time // Customer.Reg_date
    Email     string    // Customer.Email
    Password  string    // Customer.Password (bcrypt hash)
}
