/*
Package cash keeps track of the funds held by every address and allows
moving them between accounts. It implements the payment execution
capability that other extensions, like x/admins, consume through a
narrow controller interface.
*/
package cash
