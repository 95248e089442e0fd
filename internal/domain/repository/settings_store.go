package repository

// SettingsStore define el puerto del almacén clave-valor durable donde se
// recuerdan preferencias entre ejecuciones (equivalente al localStorage del
// prototipo web). Contrato: Get devuelve el valor y si la clave existe;
// Set persiste hasta que se sobrescriba, sin expiración.
type SettingsStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
